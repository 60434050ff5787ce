package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/kwdrepl/pkg/rule"
	"github.com/walteh/kwdrepl/pkg/text"
)

func ExampleLineReplacer_ReplaceText() {
	replacer := text.NewLineReplacer()

	rules := rule.Set{
		{Search: "ab", Replace: "x"},
		{Search: "x", Replace: "y"},
	}

	result, err := replacer.ReplaceText(context.Background(), strings.NewReader("ab\nxx\n"), rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %q\n", result.ModifiedContent)
	for _, rec := range result.Records {
		rec.Path = "notes.txt"
		fmt.Println(rec)
	}

	// Output:
	// Modified: "y\nyy\n"
	// notes.txt:1:0: replaced ab with x (1)
	// notes.txt:1:0: replaced x with y (2)
	// notes.txt:2:0: replaced x with y (2)
	// notes.txt:2:1: replaced x with y (2)
}

func ExampleReplaceLine() {
	line, records := text.ReplaceLine("aaa", rule.Set{{Search: "a", Replace: "aa"}})
	fmt.Println(line, len(records))

	// Output:
	// aaaaaa 3
}
