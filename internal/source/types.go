package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

// NoFile marks a span that refers to no source file, used by diagnostics
// raised before a file could be loaded.
const NoFile FileID = ^FileID(0)

const (
	// FileVirtual indicates the file was added from memory (stdin, test, generated).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 BOM was stripped during load.
	FileHadBOM
)

// File captures metadata and content for a single source file.
// Content is immutable after Add; tokens borrow sub-slices of it
// and stay valid for as long as the FileSet is alive.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
