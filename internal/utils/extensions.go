package utils

// textExtensions lists extensions that are always treated as text.
var textExtensions = map[string]struct{}{
	".txt": {}, ".md": {}, ".csv": {}, ".json": {}, ".yaml": {}, ".yml": {}, ".xml": {}, ".html": {}, ".css": {}, ".scss": {},
	".py": {}, ".js": {}, ".ts": {}, ".tsx": {}, ".jsx": {}, ".c": {}, ".cpp": {}, ".h": {}, ".hpp": {}, ".cs": {}, ".java": {},
	".php": {}, ".rb": {}, ".go": {}, ".rs": {}, ".ini": {}, ".cfg": {}, ".conf": {}, ".sh": {}, ".bat": {}, ".sql": {},
	".toml": {}, ".lock": {}, ".gitignore": {}, ".env": {}, ".properties": {}, ".gradle": {}, ".maven": {},
	".r": {}, ".swift": {}, ".kt": {}, ".scala": {}, ".pl": {}, ".lua": {}, ".vim": {}, ".tex": {},
	".rst": {}, ".adoc": {}, ".dockerfile": {}, ".makefile": {}, ".cmake": {}, ".proto": {}, ".graphql": {},
}

// binaryExtensions lists extensions that are always treated as binary.
// It is consulted before textExtensions, so ".lock" ends up binary.
var binaryExtensions = map[string]struct{}{
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".zip": {}, ".rar": {}, ".7z": {}, ".tar": {}, ".gz": {}, ".bz2": {},
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".ico": {}, ".svg": {}, ".webp": {}, ".tiff": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {}, ".obj": {}, ".apk": {},
	".bin": {}, ".iso": {}, ".dmg": {}, ".pkg": {}, ".deb": {}, ".rpm": {}, ".mp4": {}, ".mp3": {}, ".wav": {},
	".avi": {}, ".mov": {}, ".wmv": {}, ".flac": {}, ".ogg": {}, ".woff": {}, ".woff2": {}, ".ttf": {}, ".eot": {},
	".db": {}, ".sqlite": {}, ".sqlite3": {}, ".class": {}, ".jar": {}, ".war": {}, ".ear": {}, ".pyc": {},
	".pyo": {}, ".pyd": {}, ".o": {}, ".a": {}, ".lib": {}, ".exp": {}, ".ilk": {}, ".pdb": {}, ".tmp": {}, ".cache": {},
	".log": {}, ".lock": {}, ".meta": {}, ".asset": {}, ".prefab": {}, ".unity": {}, ".blend": {}, ".fbx": {},
}

// IsBinaryExtension reports whether the lower-cased extension is on the binary denylist.
func IsBinaryExtension(extension string) bool {
	_, listed := binaryExtensions[extension]
	return listed
}

// IsTextExtension reports whether the lower-cased extension is on the text allowlist.
func IsTextExtension(extension string) bool {
	_, listed := textExtensions[extension]
	return listed
}
