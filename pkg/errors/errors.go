package errors

import "fmt"

const (
	CodeNoVersionTag   = "NO_VERSION_TAG"
	CodeConfigNotFound = "CONFIG_NOT_FOUND"
	CodeImageNotBuilt  = "IMAGE_NOT_BUILT"
)

// Types ////////////////////////////////////////

type CodedError interface {
	Code() string
}

type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string {
	return e.msg
}

func (e *codedError) Code() string {
	return e.code
}

// Error Creators ///////////////////////////////

// No version tag was passed on the command line
func NoVersionTag() error {
	return &codedError{
		code: CodeNoVersionTag,
		msg:  "Error: No version tag provided.",
	}
}

// The release config was not found
func ConfigNotFound(msg string) error {
	return &codedError{
		code: CodeConfigNotFound,
		msg:  msg,
	}
}

// The build finished but the tagged image is missing from the local daemon
func ImageNotBuilt(ref string) error {
	return &codedError{
		code: CodeImageNotBuilt,
		msg:  fmt.Sprintf("image %s was not found locally after the build", ref),
	}
}

// Helpers //////////////////////////////////////

func IsNoVersionTag(err error) bool {
	return Code(err) == CodeNoVersionTag
}

func IsConfigNotFound(err error) bool {
	return Code(err) == CodeConfigNotFound
}

func IsImageNotBuilt(err error) bool {
	return Code(err) == CodeImageNotBuilt
}

// Return the error code, or the empty string
func Code(err error) string {
	if cerr, ok := err.(CodedError); ok {
		return cerr.Code()
	}

	return ""
}
