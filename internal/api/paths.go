package api

// GJSON paths of the fields read from server responses.
const (
	PathSuccess  = "success"
	PathError    = "error"
	PathMessage  = "message"
	PathDetail   = "detail" // FastAPI HTTPException body
	PathResponse = "response"

	PathStatus             = "status"
	PathAgentInitialized   = "agent_initialized"
	PathStorageInitialized = "storage_initialized"

	PathFiles            = "files"
	PathFileName         = "name"
	PathFileSize         = "size"
	PathFileLastModified = "last_modified"

	PathFilename = "filename"
	PathContent  = "content"
)
