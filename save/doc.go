// Package save writes exported artifacts to disk.
//
// A [Writer] sanitizes the artifact's file name, asks a [Destination] where
// to put it and writes the bytes atomically: the file either appears
// complete or not at all. A destination that is dismissed by the user
// yields a cancelled [Result], which is not an error.
package save
