package validation

// Schema names, relative to the schema filesystem
const (
	SchemaModConfig = "mod_config.schema.json"
)

// Error messages
const (
	ErrMsgReadDataFailed    = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFailed  = "failed to load schema %s: %w"
	ErrMsgParseDataFailed   = "failed to parse JSON data: %w"
	ErrMsgValidationFailed  = "schema validation failed:\n%s"
	ErrMsgReadSchemaFailed  = "failed to read schema file: %w"
	ErrMsgParseSchemaFailed = "failed to parse schema JSON: %w"
)
