// Package retry repeats failing calls with a doubling delay.
//
// [Do] drives archive uploads to object storage; errors wrapped with [Fatal]
// stop it immediately.
package retry
