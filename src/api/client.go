package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"

	"tourdesk/src/session"
	"tourdesk/src/types"
)

// Notifier is the toast boundary: operations report their outcome here and
// the presentation layer decides how to show it.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier is the default collaborator when no UI is attached.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Printf("ok: %s\n", msg) }
func (LogNotifier) Error(msg string)   { log.Printf("error: %s\n", msg) }

// Client issues JSON requests against the dashboard API. It attaches the
// bearer token from the session store on the way out and, on any 401/403,
// clears the session and fires OnAuthFailure — the equivalent of kicking the
// operator back to the login screen.
type Client struct {
	BaseURL       string
	HTTPClient    *http.Client
	Session       *session.Store
	Notifier      Notifier
	OnAuthFailure func()

	// UserDeleteRoleCheck mirrors the open product question of whether user
	// deletion should be admin-gated client-side like the other deletes.
	UserDeleteRoleCheck bool

	validate *validator.Validate
}

func NewClient(baseURL string, store *session.Store, notifier Notifier, onAuthFailure func()) *Client {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Client{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		HTTPClient:    &http.Client{Timeout: 20 * time.Second},
		Session:       store,
		Notifier:      notifier,
		OnAuthFailure: onAuthFailure,
		validate:      newValidator(),
	}
}

var positiveNumberValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && n > 0
}

var dateLayoutValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(types.TIME_PARSE_FORMAT, s)
	return err == nil
}

var futureDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	date, err := time.Parse(types.TIME_PARSE_FORMAT, s)
	if err != nil {
		return false
	}
	return date.After(time.Now())
}

var gtdatefield validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	date, err := time.Parse(types.TIME_PARSE_FORMAT, s)
	if err != nil {
		return false
	}
	other, ok := fl.Parent().FieldByName(fl.Param()).Interface().(string)
	if !ok {
		return false
	}
	otherdate, err := time.Parse(types.TIME_PARSE_FORMAT, other)
	if err != nil {
		return false
	}
	return date.After(otherdate)
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("positivenumber", positiveNumberValidatorFunc)
	v.RegisterValidation("datelayout", dateLayoutValidatorFunc)
	v.RegisterValidation("futuredate", futureDateValidatorFunc)
	v.RegisterValidation("gtdate", gtdatefield)
	return v
}

// validateInput runs struct validation and converts the first failure into a
// ValidationError naming the field.
func (c *Client) validateInput(in any) error {
	if c.validate == nil {
		c.validate = newValidator()
	}
	err := c.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Message: reason(fe)}
	}
	return &ValidationError{Field: "input", Message: err.Error()}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "positivenumber":
		return "must be a positive number"
	case "datelayout":
		return "must be a date in the form " + types.TIME_PARSE_FORMAT
	case "futuredate":
		return "must be in the future"
	case "gtdate":
		return "must be after " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// doJSON is the single transport path: every operation goes through here so
// the bearer header and the global auth interception apply uniformly.
func (c *Client) doJSON(ctx context.Context, method, path string, body any) (int, []byte, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 20 * time.Second}
	}
	if c.BaseURL == "" {
		return 0, nil, errors.New("missing api base url")
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Session != nil {
		if tok, ok := c.Session.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, nil, readErr
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		log.Printf("auth failure on %s %s: status=%d\n", method, path, resp.StatusCode)
		if c.Session != nil {
			c.Session.Clear()
		}
		if c.OnAuthFailure != nil {
			c.OnAuthFailure()
		}
		return resp.StatusCode, b, ErrAuthInvalid
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, b, &APIError{Status: resp.StatusCode, Message: serverMessage(b)}
	}
	return resp.StatusCode, b, nil
}

func serverMessage(b []byte) string {
	for _, key := range []string{"message", "error", "msg"} {
		if v := gjson.GetBytes(b, key); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return ""
}

// reportError routes a failed operation through the notifier and hands the
// original error back so calling code can still react to it. Auth failures
// were already handled globally and are passed through silently; overrides
// map specific statuses (404, 409) to resource-specific messages.
func (c *Client) reportError(err error, fallback string, overrides map[int]string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrAuthInvalid) {
		return err
	}
	msg := fallback
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		if m, ok := overrides[apiErr.Status]; ok {
			msg = m
		} else if apiErr.Message != "" {
			msg = apiErr.Message
		}
	default:
		var roleErr *RoleError
		var valErr *ValidationError
		if errors.As(err, &roleErr) || errors.As(err, &valErr) {
			msg = err.Error()
		}
	}
	if c.Notifier != nil {
		c.Notifier.Error(msg)
	}
	return err
}

func (c *Client) reportSuccess(msg string) {
	if c.Notifier != nil {
		c.Notifier.Success(msg)
	}
}
