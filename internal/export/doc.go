// Package export turns a survey document into a zip archive.
//
// The archive holds survey.json at its root and every attached image under
// images/. survey.json references images by their archive file name and
// never embeds image bytes.
//
// Two distinct images can share an original file name; [Collisions] decides
// what happens then. Identical content under the same name is stored once.
package export
