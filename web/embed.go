// Package web contiene las plantillas HTML y los estáticos de la interfaz, embebidos en el binario.
package web

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed static templates
var content embed.FS

// StaticFS sistema de ficheros de /static (css, js).
func StaticFS() fs.FS {
	return sub("static")
}

// TemplatesFS sistema de ficheros de las plantillas.
func TemplatesFS() fs.FS {
	return sub("templates")
}

func sub(dir string) fs.FS {
	s, err := fs.Sub(content, dir)
	if err != nil {
		panic(fmt.Sprintf("web: subdirectorio %s: %v", dir, err))
	}
	return s
}
