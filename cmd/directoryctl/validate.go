package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/countydirectory/internal/content"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errInvalidDocuments = errors.New("one or more page documents are invalid")

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate page documents written in JSON or YAML",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateFiles(cmd.OutOrStdout(), args)
	},
}

func validateFiles(w io.Writer, paths []string) error {
	failed := 0
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		doc, err := decodeDocument(path, raw)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s: %v\n", path, err)
			continue
		}

		page, err := content.Validate(doc)
		if err != nil {
			verrs, ok := content.AsValidationErrors(err)
			if !ok {
				return err
			}
			failed++
			fmt.Fprintf(w, "%s: %d problem(s)\n", path, len(verrs))
			for _, e := range verrs {
				fmt.Fprintf(w, "  %s [%s] %s\n", e.Path, e.KindName(), e.Reason)
			}
			continue
		}
		fmt.Fprintf(w, "%s: ok (%s, %d sections)\n", path, page.Slug, len(page.Sections))
	}

	if failed > 0 {
		return errInvalidDocuments
	}
	return nil
}

// decodeDocument picks a decoder from the file extension; anything that is
// not .json is read as YAML.
func decodeDocument(path string, raw []byte) (content.Document, error) {
	var doc content.Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		if err := dec.Decode(&doc); err != nil {
			return doc, fmt.Errorf("decode json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return doc, fmt.Errorf("decode yaml: %w", err)
		}
	}
	return doc, nil
}
