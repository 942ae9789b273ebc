package metadata

import (
	"path/filepath"
	"strings"
)

// File categories stored in files.type.
const (
	FileTypeDocument = "document"
	FileTypeImage    = "image"
	FileTypeVideo    = "video"
	FileTypeAudio    = "audio"
	FileTypeOther    = "other"
)

var extensionTypes = map[string]string{
	"pdf": FileTypeDocument, "doc": FileTypeDocument, "docx": FileTypeDocument, "txt": FileTypeDocument,
	"xls": FileTypeDocument, "xlsx": FileTypeDocument, "csv": FileTypeDocument, "rtf": FileTypeDocument,
	"ods": FileTypeDocument, "ppt": FileTypeDocument, "odp": FileTypeDocument, "md": FileTypeDocument,
	"html": FileTypeDocument, "htm": FileTypeDocument, "epub": FileTypeDocument, "pages": FileTypeDocument,
	"jpg": FileTypeImage, "jpeg": FileTypeImage, "png": FileTypeImage, "gif": FileTypeImage,
	"bmp": FileTypeImage, "svg": FileTypeImage, "webp": FileTypeImage,
	"mp4": FileTypeVideo, "avi": FileTypeVideo, "mov": FileTypeVideo, "mkv": FileTypeVideo, "webm": FileTypeVideo,
	"mp3": FileTypeAudio, "wav": FileTypeAudio, "ogg": FileTypeAudio, "flac": FileTypeAudio,
}

// FileType returns the lower-cased extension without the dot and its category.
func FileType(name string) (extension, category string) {
	extension = strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if extension == "" {
		return "", FileTypeOther
	}
	if c, ok := extensionTypes[extension]; ok {
		return extension, c
	}
	return extension, FileTypeOther
}
