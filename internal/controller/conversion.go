package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/colock-player/internal/api"
	"github.com/ytget/colock-player/internal/locale"
	"github.com/ytget/colock-player/internal/model"
)

// ConversionController runs conversions and publishes their outcome
type ConversionController struct {
	converter api.Converter
	store     *ResultStore
	panel     *ControlPanel
	notifier  Notifier
	texts     Texts
	opts      options

	mu         sync.Mutex
	generation uint64
}

// NewConversionController creates a conversion controller. panel may be nil.
func NewConversionController(converter api.Converter, store *ResultStore, panel *ControlPanel, notifier Notifier, texts Texts, opts ...Option) *ConversionController {
	return &ConversionController{
		converter: converter,
		store:     store,
		panel:     panel,
		notifier:  notifier,
		texts:     texts,
		opts:      buildOptions(opts),
	}
}

// Convert requests the conversion of inputText and publishes the result.
// The caller gates the call on non-empty input through the affordances.
func (c *ConversionController) Convert(ctx context.Context, inputText string, lineType model.LineType) model.ConversionResult {
	gen, token := c.nextGeneration()
	logger := c.opts.logger.With("token", token, "line_type", string(lineType))
	logger.Debugf("Converting %d characters", len([]rune(inputText)))
	if !lineType.IsKnown() {
		logger.Debugf("Line type %q is not a selector value, sending as-is", lineType)
	}

	reqCtx, cancel := c.opts.requestContext(ctx)
	defer cancel()

	text, err := c.converter.GetColockLanguage(reqCtx, model.ConversionRequest{
		InputText: inputText,
		LineType:  lineType,
	})

	var result model.ConversionResult
	if err != nil {
		logger.Errorw("Conversion failed", errorFields(err)...)
		result = model.NewErrorResult(c.texts.GetText(locale.KeyConversionError))
	} else {
		result = model.NewTextResult(text)
	}

	if !c.publish(gen, result) {
		logger.Infof("Dropped stale conversion response (generation %d)", gen)
		return result
	}

	if result.IsError() {
		c.notifier.Notify(NoticeError, result.Err.Message)
	} else {
		logger.Infof("Conversion succeeded")
	}
	return result
}

// Copy puts the current result text on the clipboard
func (c *ConversionController) Copy(clipboard Clipboard) bool {
	text := c.store.Text()
	if text == "" {
		c.notifier.Notify(NoticeWarning, c.texts.GetText(locale.KeyNothingToCopy))
		return false
	}
	clipboard.SetContent(text)
	c.notifier.Notify(NoticeSuccess, c.texts.GetText(locale.KeyCopied))
	return true
}

// Store returns the store this controller writes to
func (c *ConversionController) Store() *ResultStore {
	return c.store
}

func (c *ConversionController) nextGeneration() (uint64, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return c.generation, generateToken()
}

// publish writes result unless it is stale and stale responses are dropped.
// Without DiscardStale the last response to arrive wins.
func (c *ConversionController) publish(gen uint64, result model.ConversionResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.discardStale && gen != c.generation {
		return false
	}

	c.store.set(result)
	if !result.IsError() && c.panel != nil {
		c.panel.MarkResult()
	}
	return true
}

// generateToken creates a request token for log correlation
func generateToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// errorFields flattens an error into zap key/value pairs
func errorFields(err error) []interface{} {
	fields := []interface{}{"error", err}
	var e *model.Error
	if errors.As(err, &e) {
		fields = append(fields, "op", e.Op, "kind", string(e.Kind))
		if e.StatusCode != 0 {
			fields = append(fields, "status", e.StatusCode)
		}
	}
	return fields
}
