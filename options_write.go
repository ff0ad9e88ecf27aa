package coverart

// WriteOption configures behavior when writing a cover.
//
// Example:
//
//	err := file.WriteCover(data, "image/jpeg",
//	    coverart.WithBackup(".bak"),
//	    coverart.WithValidation(),
//	)
type WriteOption func(*writeOptions)

// writeOptions holds configuration for writing covers.
type writeOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
	strictMIME      bool   // Reject a declared MIME that differs from the image data
}

// defaultWriteOptions returns the default configuration for writing.
func defaultWriteOptions() *writeOptions {
	return &writeOptions{
		backupSuffix:    "",
		validate:        false,
		preserveModTime: false,
		strictMIME:      false,
	}
}

// WithBackup copies the original file before the cover is written.
//
// The backup file will have the specified suffix appended to the original
// filename. For example, WithBackup(".bak") will create "song.mp3.bak"
// before modifying "song.mp3".
//
// If the backup file already exists, it will be overwritten.
func WithBackup(suffix string) WriteOption {
	return func(o *writeOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// After saving, the file is re-opened and its cover read back; the write
// fails unless the bytes match exactly. This adds overhead but provides
// confidence that the save operation succeeded.
func WithValidation() WriteOption {
	return func(o *writeOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, writing updates the file's modification time to the current
// time. Use this to update artwork without changing the "modified" date.
func WithPreserveModTime() WriteOption {
	return func(o *writeOptions) {
		o.preserveModTime = true
	}
}

// WithStrictMIME rejects a declared MIME type that does not match the
// decoded image with *MIMEMismatchError.
//
// By default the declared type is stored as given. "image/jpg" is accepted
// for JPEG data in either mode.
func WithStrictMIME() WriteOption {
	return func(o *writeOptions) {
		o.strictMIME = true
	}
}
