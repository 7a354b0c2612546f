package constants

// Delegate

const (
	DelegateScriptDefault   = "./s3-rest.py"
	DelegateLogLevelDefault = "DEBUG"
	DelegateConfigFlag      = "-c"
	DelegateMethodFlag      = "-m"
	DelegateBucketFlag      = "-b"
	DelegateLogLevelFlag    = "-l"
	MethodGet               = "get"
	MethodPut               = "put"
	MethodPost              = "post"
	MethodDelete            = "delete"
	DelayDefaultSeconds     = 2 // time for a human to read the composed command before launch
)

// Environment

const (
	EnvVarPrefix  = "S3DEMO" // prefix for environment variables that override CLI flag values
	EnvVarPython  = EnvVarPrefix + "_PYTHON"
	PythonDefault = "python3"
)

// CLI

const (
	ArgsTxtConfigFile = "<json configuration file>"
	ArgsTxtBucketName = "<bucket name>"
)
