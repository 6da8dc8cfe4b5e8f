// Package mmap provides anonymous read-write memory mappings.
//
// The arena uses these mappings to back blocks outside the Go heap, so that
// large arenas add nothing to the garbage collector's scan work.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// Mappings are page aligned and zero filled. Close is idempotent; callers must
// not touch Bytes after Close returns.
package mmap
