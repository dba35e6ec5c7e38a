package paginate

// LineSource is a finite, lazily read sequence of lines. *bufio.Scanner
// satisfies it.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// Page is one unit of output. Index counts pages of the whole document,
// whether or not they are emitted.
type Page struct {
	Index   int
	Header  []string
	Body    []LineRecord
	Trailer []string
	// Final is set on the last page of the document.
	Final bool
}

// maxBodyPrealloc caps the body slice preallocation for very long pages.
const maxBodyPrealloc = 256

// Builder groups source lines into pages of at most Layout.LinesPerPage
// content lines.
type Builder struct {
	src      LineSource
	name     string
	layout   Layout
	numberer *Numberer

	produced  int
	linesRead int

	pending    string
	hasPending bool
	exhausted  bool
	err        error
}

// NewBuilder creates a Builder reading from src. name identifies src in errors.
func NewBuilder(src LineSource, name string, layout Layout, numberer *Numberer) *Builder {
	return &Builder{
		src:      src,
		name:     name,
		layout:   layout,
		numberer: numberer,
	}
}

// NextIndex returns the index the next page will get.
func (b *Builder) NextIndex() int {
	return b.produced + 1
}

// PagesRead returns the number of pages built or skipped so far.
func (b *Builder) PagesRead() int {
	return b.produced
}

// LinesRead returns the number of content lines consumed so far.
func (b *Builder) LinesRead() int {
	return b.linesRead
}

// Next builds the next page. It returns nil once the source is exhausted.
func (b *Builder) Next() (*Page, error) {
	if !b.peek() {
		return nil, b.sourceErr()
	}

	page := &Page{
		Index: b.NextIndex(),
		Body:  make([]LineRecord, 0, min(b.layout.LinesPerPage, maxBodyPrealloc)),
	}
	for len(page.Body) < b.layout.LinesPerPage {
		line, ok := b.pull()
		if !ok {
			break
		}
		page.Body = append(page.Body, b.numberer.Assign(line))
	}
	if err := b.sourceErr(); err != nil {
		return nil, err
	}

	b.produced++
	page.Final = !b.peek()
	if err := b.sourceErr(); err != nil {
		return nil, err
	}
	return page, nil
}

// Skip consumes the lines of the next page without building it, advancing
// the line numbers. It reports false once the source is exhausted.
func (b *Builder) Skip() (bool, error) {
	if !b.peek() {
		return false, b.sourceErr()
	}

	count := 0
	for count < b.layout.LinesPerPage {
		if _, ok := b.pull(); !ok {
			break
		}
		count++
	}
	b.numberer.Advance(count)
	if err := b.sourceErr(); err != nil {
		return false, err
	}

	b.produced++
	return true, nil
}

func (b *Builder) pull() (string, bool) {
	if b.hasPending {
		b.hasPending = false
		b.linesRead++
		return b.pending, true
	}
	if b.exhausted {
		return "", false
	}
	if b.src.Scan() {
		b.linesRead++
		return b.src.Text(), true
	}
	b.exhausted = true
	b.err = b.src.Err()
	return "", false
}

func (b *Builder) peek() bool {
	if b.hasPending {
		return true
	}
	line, ok := b.pull()
	if ok {
		b.linesRead--
		b.pending = line
		b.hasPending = true
	}
	return ok
}

func (b *Builder) sourceErr() error {
	if b.err == nil {
		return nil
	}
	return &SourceError{Name: b.name, Err: b.err}
}
