package main

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// LSP positions count UTF-16 code units within a 0-based line.

func toPosition(content string, off int) protocol.Position {
	off = min(max(off, 0), len(content))
	ls := strings.LastIndexByte(content[:off], '\n') + 1
	return protocol.Position{
		Line:      uint32(strings.Count(content[:ls], "\n")),
		Character: uint32(utf16Len(content[ls:off])),
	}
}

func toOffset(content string, p protocol.Position) int {
	ls := 0
	for line := uint32(0); line < p.Line; line++ {
		i := strings.IndexByte(content[ls:], '\n')
		if i == -1 {
			return len(content)
		}
		ls += i + 1
	}
	off := ls
	for n := uint32(0); n < p.Character && off < len(content); {
		r, sz := utf8.DecodeRuneInString(content[off:])
		if r == '\n' {
			break
		}
		n += uint32(utf16.RuneLen(r))
		off += sz
	}
	return off
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// linePrefix returns the text of the line holding off, up to off.
func linePrefix(content string, off int) string {
	off = min(max(off, 0), len(content))
	ls := strings.LastIndexByte(content[:off], '\n') + 1
	return content[ls:off]
}
