package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/devsim-project/devsim-go/pkg/log"
	"github.com/devsim-project/devsim-go/pkg/registry"
)

// Loader errors. All of them mean the override pass was skipped and the
// capability record kept its seeded values.
var (
	ErrEmptyPath         = errors.New("configuration path is empty")
	ErrMalformedDocument = errors.New("configuration document is not valid JSON")
	ErrDocumentRoot      = errors.New("configuration document root is not an object")
	ErrUnsupportedSchema = errors.New("configuration document schema is not supported")
)

// Loader applies configuration documents to capability records.
// A Loader is stateless apart from its logger and safe for concurrent use.
type Loader struct {
	logger log.Logger
}

// NewLoader creates a Loader reporting diagnostics to logger.
// A nil logger disables diagnostics.
func NewLoader(logger log.Logger) *Loader {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Loader{logger: logger}
}

// LoadFile reads the document at path and applies it to data.
// Any returned error means data was left exactly as seeded.
func (l *Loader) LoadFile(path string, data *registry.DeviceData) error {
	p := l.newPass(path, data)

	if path == "" {
		p.errorf("%v", ErrEmptyPath)
		return ErrEmptyPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		p.errorf("failed to open configuration file: %v", err)
		return fmt.Errorf("open configuration file: %w", err)
	}

	return l.parse(p, raw, data)
}

// Parse applies a document held in memory to data.
// Any returned error means data was left exactly as seeded.
func (l *Loader) Parse(doc []byte, data *registry.DeviceData) error {
	return l.parse(l.newPass("", data), doc, data)
}

func (l *Loader) newPass(path string, data *registry.DeviceData) *pass {
	p := &pass{logger: l.logger, file: path}
	if data != nil {
		p.device = uint64(data.PhysicalDevice)
	}
	return p
}

func (l *Loader) parse(p *pass, doc []byte, data *registry.DeviceData) error {
	// Comments and trailing commas are tolerated; strict JSON is unchanged.
	doc = jsonc.ToJSON(doc)

	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		p.errorf("failed to parse configuration document: %v", err)
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	root, ok := parsed.(map[string]any)
	if !ok {
		p.errorf("%v", ErrDocumentRoot)
		return ErrDocumentRoot
	}

	schemaValue, hasSchema := root["$schema"]
	schemaString, isString := schemaValue.(string)
	if !hasSchema || !isString {
		p.errorf("document element \"$schema\" is missing or not a string")
		return ErrUnsupportedSchema
	}

	entry, ok := schemaTable[schemaString]
	if !ok {
		p.errorf("document schema %q is not supported", schemaString)
		return ErrUnsupportedSchema
	}
	p.debugf("document schema %q identified as %s", schemaString, entry.id)

	entry.apply(p, root, data)
	p.debugf("override pass complete")
	return nil
}

// pass carries the per-document context: the logger, the source file,
// and the device the record belongs to.
type pass struct {
	logger log.Logger
	file   string
	device uint64
}

func (p *pass) debugf(format string, args ...any) {
	p.logger.Log(log.Event{
		Timestamp:      time.Now(),
		Category:       log.CategoryDebug,
		Source:         log.SourceLoader,
		Message:        fmt.Sprintf(format, args...),
		PhysicalDevice: p.device,
		File:           p.file,
	})
}

func (p *pass) errorf(format string, args ...any) {
	p.logger.Log(log.Event{
		Timestamp:      time.Now(),
		Category:       log.CategoryError,
		Source:         log.SourceLoader,
		Message:        fmt.Sprintf(format, args...),
		PhysicalDevice: p.device,
		File:           p.file,
	})
}

// warnIncrease reports a monotonicity warning: the document raised a
// limit above its seeded value. The override is still applied.
func (p *pass) warnIncrease(field string, oldValue, newValue uint64) {
	p.logger.Log(log.Event{
		Timestamp:      time.Now(),
		Category:       log.CategoryWarning,
		Source:         log.SourceLoader,
		Message:        fmt.Sprintf("%q value (%d) is greater than existing value (%d)", field, newValue, oldValue),
		PhysicalDevice: p.device,
		File:           p.file,
		Field:          field,
		Override:       &log.OverrideEvent{OldValue: oldValue, NewValue: newValue},
	})
}

// warnHeapIndex reports a memory type referencing a heap index at or
// beyond the heap count. The value is stored verbatim regardless.
func (p *pass) warnHeapIndex(index int, heapIndex, heapCount uint32) {
	p.logger.Log(log.Event{
		Timestamp:      time.Now(),
		Category:       log.CategoryWarning,
		Source:         log.SourceLoader,
		Message:        fmt.Sprintf("memoryTypes[%d].heapIndex (%d) exceeds memoryHeapCount (%d)", index, heapIndex, heapCount),
		PhysicalDevice: p.device,
		File:           p.file,
		Field:          fmt.Sprintf("memoryTypes[%d].heapIndex", index),
		Override:       &log.OverrideEvent{OldValue: uint64(heapCount), NewValue: uint64(heapIndex)},
	})
}
