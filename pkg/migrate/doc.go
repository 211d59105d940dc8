/*
Package migrate implements the four one-shot operations of the utils
refactor.

	+-----------+     +-----------+     +-----------+
	|  combine  | --> | update or | --> |  restore  |
	| (merge)   |     |  remove   |     | (facade)  |
	+-----------+     +-----------+     +-----------+

🎯 Purpose:
- combine: merge the source utils file into the facade, delete the source
- remove-facade: strip the facade token from the file list, delete the facade
- restore-facade: regenerate the facade from the fixed export mapping
- update-refs: rewrite include paths and module identifiers in the file list

🔄 Flow (every operation):
1. Read file content in full
2. Transform the content (pkg/text, pure functions)
3. Overwrite the file in place
4. Optionally delete a file

⚡ Semantics worth knowing:
- Listed files that don't exist are skipped silently; required files
  (the facade, the combine source) are fatal when missing.
- Writes are not transactional. A failure mid-operation leaves the
  already-written files as they are.
- remove-facade's token removal is idempotent; update-refs is not, and
  a rerun double-prefixes identifiers. Both match the behavior of the
  original migration scripts.

🤝 Interfaces:
- Config: file names, marker, export mapping (pkg/config)
- Status: per-file console output (pkg/status)
*/
package migrate
