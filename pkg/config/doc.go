/*
Package config loads rule files for kwdrepl.

	            +-------------+
	            |   Config    |
	            |   (Rules)   |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Lets long or awkward rule lists live in a file instead of two delimited arguments
- Carries include/exclude globs next to the rules they belong to

🔄 Flow:
1. Pick a parser from the file extension
2. Decode with unknown fields rejected
3. Validate rules (non-empty search terms) and globs
4. Hand the rule set to the operation package

Rules keep the order they are written in. That order is the ordinal reported
in replacement records.

🔍 Example (YAML):

	rules:
	  - search: foo
	    replace: bar
	  - search: bar
	    replace: baz
	exclude:
	  - ".git/**"

Every error returned by Load matches rule.ErrConfiguration.
*/
package config
