package page

import (
	"context"
	"errors"
	"sync"

	"newsletter-form/pkg/models"
)

// MemoryDocument is a Document held entirely in memory.
// The HTTP server builds one per request and tests use it as the page under test.
type MemoryDocument struct {
	councilNumber string

	mu       sync.Mutex
	forms    map[string]*MemoryForm
	elements map[string]*MemoryElement
	handlers map[*MemoryForm][]SubmitHandler
}

func NewMemoryDocument(councilNumber string) *MemoryDocument {
	return &MemoryDocument{
		councilNumber: councilNumber,
		forms:         make(map[string]*MemoryForm),
		elements:      make(map[string]*MemoryElement),
		handlers:      make(map[*MemoryForm][]SubmitHandler),
	}
}

// NewNewsletterDocument builds the full newsletter widget with the given field values
func NewNewsletterDocument(councilNumber string, fields models.SubscriptionRequest) *MemoryDocument {
	doc := NewMemoryDocument(councilNumber)

	form := NewMemoryForm()
	form.AddInput(EmailSelector, fields.Email)
	form.AddInput(NameSelector, fields.Name)
	form.AddInput(PhoneSelector, fields.Phone)
	form.AddCheckbox(IsHumanSelector, fields.IsHuman)
	form.AddButton(SubmitSelector, SubmitIdleLabel)

	doc.AddForm(FormSelector, form)
	doc.AddElement(FeedbackID, &MemoryElement{ClassName: FeedbackBaseCSS})
	return doc
}

func (d *MemoryDocument) AddForm(selector string, form *MemoryForm) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.forms[selector] = form
}

func (d *MemoryDocument) AddElement(id string, el *MemoryElement) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements[id] = el
}

func (d *MemoryDocument) QueryForm(selector string) (Form, bool) {
	form, ok := d.MemoryForm(selector)
	if !ok {
		return nil, false
	}
	return form, true
}

// MemoryForm returns the concrete form registered under selector
func (d *MemoryDocument) MemoryForm(selector string) (*MemoryForm, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	form, ok := d.forms[selector]
	return form, ok
}

func (d *MemoryDocument) ElementByID(id string) (Element, bool) {
	el, ok := d.MemoryElement(id)
	if !ok {
		return nil, false
	}
	return el, true
}

func (d *MemoryDocument) MemoryElement(id string) (*MemoryElement, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.elements[id]
	return el, ok
}

func (d *MemoryDocument) CouncilNumber() string {
	return d.councilNumber
}

func (d *MemoryDocument) OnSubmit(form Form, handler SubmitHandler) {
	mf, ok := form.(*MemoryForm)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[mf] = append(d.handlers[mf], handler)
}

// HasSubmitHandler reports whether anything is listening for submits on form
func (d *MemoryDocument) HasSubmitHandler(form *MemoryForm) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers[form]) > 0
}

// Submit dispatches a submit event on form to every registered handler in order.
// It reports whether a handler prevented the default submission.
func (d *MemoryDocument) Submit(ctx context.Context, form *MemoryForm) (bool, error) {
	d.mu.Lock()
	handlers := append([]SubmitHandler(nil), d.handlers[form]...)
	d.mu.Unlock()

	event := &memoryEvent{target: form}
	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return event.prevented, errors.Join(errs...)
}

type memoryEvent struct {
	target    *MemoryForm
	prevented bool
}

func (e *memoryEvent) Target() Form {
	return e.target
}

func (e *memoryEvent) PreventDefault() {
	e.prevented = true
}

// MemoryForm holds form controls keyed by selector
type MemoryForm struct {
	mu         sync.Mutex
	inputs     map[string]*MemoryInput
	checkboxes map[string]*MemoryCheckbox
	buttons    map[string]*MemoryButton
}

func NewMemoryForm() *MemoryForm {
	return &MemoryForm{
		inputs:     make(map[string]*MemoryInput),
		checkboxes: make(map[string]*MemoryCheckbox),
		buttons:    make(map[string]*MemoryButton),
	}
}

func (f *MemoryForm) AddInput(selector, value string) *MemoryInput {
	in := &MemoryInput{value: value}
	f.mu.Lock()
	f.inputs[selector] = in
	f.mu.Unlock()
	return in
}

func (f *MemoryForm) AddCheckbox(selector string, checked bool) *MemoryCheckbox {
	cb := &MemoryCheckbox{checked: checked}
	f.mu.Lock()
	f.checkboxes[selector] = cb
	f.mu.Unlock()
	return cb
}

func (f *MemoryForm) AddButton(selector, text string) *MemoryButton {
	b := &MemoryButton{text: text}
	f.mu.Lock()
	f.buttons[selector] = b
	f.mu.Unlock()
	return b
}

func (f *MemoryForm) Input(selector string) (Input, bool) {
	in, ok := f.MemoryInput(selector)
	if !ok {
		return nil, false
	}
	return in, true
}

func (f *MemoryForm) MemoryInput(selector string) (*MemoryInput, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	in, ok := f.inputs[selector]
	return in, ok
}

func (f *MemoryForm) Checkbox(selector string) (Checkbox, bool) {
	cb, ok := f.MemoryCheckbox(selector)
	if !ok {
		return nil, false
	}
	return cb, true
}

func (f *MemoryForm) MemoryCheckbox(selector string) (*MemoryCheckbox, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cb, ok := f.checkboxes[selector]
	return cb, ok
}

func (f *MemoryForm) Button(selector string) (Button, bool) {
	b, ok := f.MemoryButton(selector)
	if !ok {
		return nil, false
	}
	return b, true
}

func (f *MemoryForm) MemoryButton(selector string) (*MemoryButton, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.buttons[selector]
	return b, ok
}

func (f *MemoryForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, in := range f.inputs {
		in.SetValue("")
	}
	for _, cb := range f.checkboxes {
		cb.SetChecked(false)
	}
}

// Values reads the current field values of the newsletter widget
func (f *MemoryForm) Values() models.SubscriptionRequest {
	var req models.SubscriptionRequest
	if in, ok := f.MemoryInput(EmailSelector); ok {
		req.Email = in.Value()
	}
	if in, ok := f.MemoryInput(NameSelector); ok {
		req.Name = in.Value()
	}
	if in, ok := f.MemoryInput(PhoneSelector); ok {
		req.Phone = in.Value()
	}
	if cb, ok := f.MemoryCheckbox(IsHumanSelector); ok {
		req.IsHuman = cb.Checked()
	}
	return req
}

type MemoryInput struct {
	mu    sync.Mutex
	value string
}

func (i *MemoryInput) Value() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.value
}

func (i *MemoryInput) SetValue(value string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.value = value
}

type MemoryCheckbox struct {
	mu      sync.Mutex
	checked bool
}

func (c *MemoryCheckbox) Checked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checked
}

func (c *MemoryCheckbox) SetChecked(checked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checked = checked
}

type MemoryButton struct {
	mu       sync.Mutex
	disabled bool
	text     string
}

func (b *MemoryButton) SetDisabled(disabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled = disabled
}

func (b *MemoryButton) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
}

func (b *MemoryButton) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

func (b *MemoryButton) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// MemoryElement is a display element. The exported fields seed its initial state.
type MemoryElement struct {
	mu        sync.Mutex
	ClassName string
	Text      string
	Visible   bool
}

func (e *MemoryElement) SetClassName(className string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ClassName = className
}

func (e *MemoryElement) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Text = text
}

func (e *MemoryElement) SetVisible(visible bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Visible = visible
}

// ElementState is a point-in-time copy of a MemoryElement
type ElementState struct {
	ClassName string
	Text      string
	Visible   bool
}

func (e *MemoryElement) State() ElementState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ElementState{ClassName: e.ClassName, Text: e.Text, Visible: e.Visible}
}
