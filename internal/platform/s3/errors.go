package s3

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// isBucketAlreadyOwnedByYou checks if the error indicates the bucket exists and is owned by us.
func isBucketAlreadyOwnedByYou(err error) bool {
	if err == nil {
		return false
	}

	var baoby *types.BucketAlreadyOwnedByYou
	if errors.As(err, &baoby) {
		return true
	}

	var bae *types.BucketAlreadyExists
	if errors.As(err, &bae) {
		return true
	}

	// S3-compatible services may not return the exact SDK error types
	return hasErrorCode(err, "BucketAlreadyOwnedByYou", "BucketAlreadyExists")
}

// isNotFoundError checks if the error is a not found error.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}

	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	return hasErrorCode(err, "NotFound", "NoSuchBucket", "404")
}

// isPermanent reports errors that a retry cannot fix: bad credentials,
// missing permissions or a missing bucket.
func isPermanent(err error) bool {
	if err == nil {
		return false
	}
	if isNotFoundError(err) {
		return true
	}
	return hasErrorCode(err,
		"AccessDenied",
		"InvalidAccessKeyId",
		"SignatureDoesNotMatch",
		"InvalidBucketName",
		"AllAccessDisabled",
	)
}

func hasErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return false
}
