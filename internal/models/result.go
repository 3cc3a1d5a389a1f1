package models

// GeneratedFile is one output unit of a platform compile. Content is
// finished source text; Path is relative to the platform's project root.
type GeneratedFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Diagnostic is an error or warning produced during compilation,
// attributed to a capsule instance when possible (best-effort).
// Suggestion carries an optional remediation hint on warnings.
type Diagnostic struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	CapsuleID  string `json:"capsuleId,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Stats summarizes the output of one platform compile.
// CompilationTime is wall-clock milliseconds.
type Stats struct {
	FileCount       int   `json:"fileCount"`
	TotalSize       int   `json:"totalSize"`
	CompilationTime int64 `json:"compilationTime"`
}

// CompilationResult is the outcome of compiling one composition for one
// platform. Errors and Warnings stay nil (absent when serialized) when
// no diagnostics occurred; an empty list is never emitted.
type CompilationResult struct {
	Success  bool            `json:"success"`
	Platform Platform        `json:"platform"`
	Files    []GeneratedFile `json:"files"`
	Errors   []Diagnostic    `json:"errors,omitempty"`
	Warnings []Diagnostic    `json:"warnings,omitempty"`
	Stats    Stats           `json:"stats"`
}
