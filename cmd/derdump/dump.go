package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/dercert/derx509/dertag"
	"github.com/dercert/derx509/dertlv"
	"github.com/spf13/cobra"
)

func init() {
	cmd := newDumpCmd()
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the TLV tree of a DER blob",
		Long: `The dump command parses a DER-encoded blob and prints its
tag-length-value tree, recursing into SEQUENCE and SET OF values.

Example:
  derdump dump cert.der
  derdump dump --hex request.hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	data := raw
	if hexInput {
		decoded, err := hex.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			return fmt.Errorf("decoding hex input: %w", err)
		}

		data = decoded
	}

	return dumpTLV(os.Stdout, data, 0, 0)
}

// dumpTLV recursively prints the tag-length-value tree starting at data,
// stopping recursion at maxDepth (0 means unlimited). When a TLV at some
// level cannot be parsed, it prints a parse-error line with the offset and
// stops printing that level.
func dumpTLV(w *os.File, data []byte, depth int, baseOffset int) error {
	if maxDepth > 0 && depth > maxDepth {
		return nil
	}

	offset := 0
	for offset < len(data) {
		tag, content, consumed, err := dertlv.DecodeAny(data[offset:])
		if err != nil {
			fmt.Fprintf(w, "%s<parse error at offset %d: %v>\n", indent(depth), baseOffset+offset, err)
			return nil
		}

		fmt.Fprintf(w, "%s%-20s len=%-4d offset=%d\n",
			indent(depth), dertag.Name(tag), len(content), baseOffset+offset)

		if dertag.IsConstructed(tag) {
			if err := dumpTLV(w, content, depth+1, baseOffset+offset+(consumed-len(content))); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(w, "%s  %s\n", indent(depth), hexPreview(content))
		}

		offset += consumed
	}

	return nil
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func hexPreview(content []byte) string {
	const maxBytes = 32
	if len(content) > maxBytes {
		return fmt.Sprintf("%s... (%d bytes)", hex.EncodeToString(content[:maxBytes]), len(content))
	}

	return hex.EncodeToString(content)
}
