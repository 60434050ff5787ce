/*
Package status owns the file system side of a rewrite and keeps track of what
happened to each file.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+-----+
	|   Files   |           | Reporter |
	| (Storage) |           | (UI/UX)  |
	+-----------+           +----------+

🎯 Purpose:
- Read whole files and write them back, either in place or atomically
- Record a FileResult per processed file
- Summarize a run for the user

⚡ Writes:
WriteFile truncates and rewrites the file in place. A crash halfway leaves a
partially written file behind; there is no backup. WriteFileAtomic writes a
temp file next to the target, copies the target's permission bits and renames
it into place, so readers see either the old or the new content.

🔍 Example:

	mgr := status.New(zerolog.Ctx(ctx))
	content, err := mgr.ReadFile(ctx, path)
	...
	err = mgr.WriteFileAtomic(ctx, path, modified)
	mgr.TrackFile(ctx, status.FileResult{Path: path, Status: status.StatusModified})
	status.NewReporter(os.Stderr).ReportSummary(mgr.Summary())
*/
package status
