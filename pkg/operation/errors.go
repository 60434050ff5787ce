// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"fmt"

	"github.com/walteh/kwdrepl/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrIO is matched by every *FileError.
	ErrIO = errors.Base("i/o error")

	// ErrPath is matched by every *PathError.
	ErrPath = errors.Base("path is neither a file nor a directory")
)

// 💥 FileError reports a failure to read, decode, walk or write a file
type FileError struct {
	Op   string // "read", "decode", "write", "walk" or "stat"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *FileError) Is(target error) bool {
	return target == ErrIO
}

// 🚫 PathError reports a root path that is neither a regular file nor a
// directory. It is a configuration error: nothing has been touched yet.
type PathError struct {
	Path string
	Err  error // stat failure, nil when the path exists but is a special file
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, ErrPath.Error(), e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, ErrPath.Error())
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrPath or rule.ErrConfiguration.
func (e *PathError) Is(target error) bool {
	return target == ErrPath || target == rule.ErrConfiguration
}
