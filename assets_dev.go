//go:build !release

package main

import (
	"log"
	"os"
)

// Development builds read templates and static assets straight from disk so
// edits show up on refresh.
func init() {
	log.Println("Serving live assets from the filesystem.")
	templatesFS = os.DirFS("templates")
	staticFS = os.DirFS("static")
}
