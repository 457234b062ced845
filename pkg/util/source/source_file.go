// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"fmt"
	"os"
	"slices"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// File represents a logic program source file (typically stored on disk).  The
// offset at which every line starts is recorded up front, such that positions
// can be resolved without rescanning the contents.
type File struct {
	filename string
	contents []rune
	// Offset of the first character of each line.
	lines []int
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	var (
		contents = []rune(string(bytes))
		lines    = []int{0}
	)
	//
	for i, c := range contents {
		if c == '\n' {
			lines = append(lines, i+1)
		}
	}
	//
	return &File{filename, contents, lines}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the text covered by a given span of this file.
func (s *File) Text(span Span) string {
	end := min(span.end, len(s.contents))
	start := min(span.start, end)
	//
	return string(s.contents[start:end])
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// Position resolves an offset into this file as a line and column.  Offsets
// beyond the end of the file resolve onto the last line.
func (s *File) Position(offset int) Position {
	offset = max(0, min(offset, len(s.contents)))
	//
	index, found := slices.BinarySearch(s.lines, offset)
	if !found {
		index--
	}
	//
	return Position{index + 1, offset - s.lines[index] + 1}
}

// Line returns a given line of this file, counting from 1.
func (s *File) Line(number int) Line {
	if number < 1 || number > len(s.lines) {
		panic(fmt.Sprintf("invalid line %d", number))
	}
	//
	start, end := s.lines[number-1], len(s.contents)
	//
	if number < len(s.lines) {
		// exclude newline
		end = s.lines[number] - 1
	}
	//
	return Line{s.contents, Span{start, end}, number}
}

// FindFirstEnclosingLine determines the line which encloses the start of a
// span.  The returned line is not guaranteed to enclose the entire span, as
// spans can cross multiple lines.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	return s.Line(s.Position(span.start).Line)
}

// Position identifies a character by line and column, both counting from 1.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Line is a single line within a source file, excluding its terminating
// newline.
type Line struct {
	text   []rune
	span   Span
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, counting from 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the offset of the first character of this line.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// SyntaxError reports a problem with a given span of a source file, such as an
// unparseable directive or a malformed formula.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Position returns the line and column at which this error starts.
func (p *SyntaxError) Position() Position {
	return p.srcfile.Position(p.span.start)
}

// Error implements the error interface, as "file:line:column: message".
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%s: %s", p.srcfile.filename, p.Position(), p.msg)
}

// FirstEnclosingLine determines the line on which this error starts.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
