// Codecloak is a local CLI for sharing code with external tools without
// giving away its names or string contents.
//
// It abbreviates identifiers and masks string literals while keeping
// language keywords and framework APIs intact, stores the reverse mapping,
// and restores original names in whatever text comes back.
//
// Usage:
//
//	codecloak cloak --lang tsx < Button.tsx       # cloak a snippet from stdin
//	codecloak cloak -f app/models/order.rb        # language detected from the file name
//	codecloak decloak < answer.txt                # restore names using the last context
//	codecloak keywords show ruby --format markdown
//	codecloak keywords add tsx useAppStore
//	codecloak context show                        # print the stored context
//	codecloak serve                               # HTTP API on 127.0.0.1:7420
//
// Exit codes: 0 success, 2 usage error, 3 no stored context, 4 runtime error.
package main
