// Package s3 uploads exported survey archives to S3-compatible object
// storage.
//
// [Client] is a thin wrapper over the AWS SDK covering the bucket and object
// calls surveykit needs. [Uploader] puts one archive under a key prefix,
// retrying transient failures with exponential backoff and failing fast on
// permission and configuration errors.
package s3
