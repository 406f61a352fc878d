// Package attachment handles the image files attached to a survey.
//
// A [File] is the raw content picked by the author. Before an editor can show
// it, the file is registered with a [Registry], which hands out a display URL.
// URLs stay valid until they are revoked; replacing or detaching an image must
// revoke the previous URL so the registry does not accumulate stale entries.
package attachment
