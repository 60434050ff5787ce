/*
Package operation implements the find-and-replace run itself.

	+-------------+
	|     Run     |
	| (Traversal) |
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (seq / par) |
	+------+------+
	       |
	+------+------+
	|   engine    |
	| read → text |
	| → write     |
	+-------------+

🎯 Purpose:
- Decide whether the root path is a file or a directory
- Enumerate files under a directory, honoring include/exclude globs
- Run the substitution engine once per file, independently

🔄 Flow per file:
1. Read the whole file through status.FileManager
2. Reject content that is not valid UTF-8
3. Apply the rules line by line with text.LineReplacer
4. Emit replacement records to the log.Logger in the context
5. Write back (in place, or atomically), skipping files that did not change

⚠️ Failures:
- *PathError: the root is neither a file nor a directory. Reported before any
  file is touched; matches rule.ErrConfiguration.
- *FileError: reading, decoding, walking or writing failed; matches ErrIO.
  The first one aborts the run unless Options.KeepGoing is set.

🔍 Example:

	ctx = log.NewContext(ctx, log.New(os.Stdout, os.Stderr, logger))
	summary, err := operation.Run(ctx, operation.Options{
		Path:  "./src",
		Rules: rule.Set{{Search: "foo", Replace: "bar"}},
		Log:   true,
	})
*/
package operation
