package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the request scoped values through the handler chain. Ctx is
// the context the repositories receive, claims are attached to it by the
// authentication middleware.
type Context struct {
	*gin.Context
	Ctx context.Context

	invalidParams  []string
	invalidQueries []string
}

// GetParam parses the named route parameter into the requested kind. Parse
// failures are collected and reported by ValidParam so handlers can read all
// parameters first and validate once.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.invalidParams = append(c.invalidParams, name)
			return 0
		}
		return v
	case reflect.String:
		return value
	default:
		c.invalidParams = append(c.invalidParams, name)
		return nil
	}
}

// ValidParam reports route parameters that failed to parse.
func (c *Context) ValidParam() error {
	if len(c.invalidParams) > 0 {
		return &Error{
			Err:    fmt.Errorf("invalid params: [%s]", strings.Join(c.invalidParams, ", ")),
			Status: http.StatusBadRequest,
			Fields: c.invalidParams,
		}
	}
	return nil
}

// GetQueryFunc parses an optional query parameter into a pointer of the
// requested kind. A missing parameter yields a typed nil so filters stay
// optional.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok || value == "" {
			return (*int)(nil)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			c.invalidQueries = append(c.invalidQueries, name)
			return (*int)(nil)
		}
		return &v
	case reflect.Bool:
		if !ok || value == "" {
			return (*bool)(nil)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			c.invalidQueries = append(c.invalidQueries, name)
			return (*bool)(nil)
		}
		return &v
	case reflect.String:
		if !ok || value == "" {
			return (*string)(nil)
		}
		return &value
	default:
		c.invalidQueries = append(c.invalidQueries, name)
		return nil
	}
}

// ValidQuery reports query parameters that failed to parse.
func (c *Context) ValidQuery() error {
	if len(c.invalidQueries) > 0 {
		return &Error{
			Err:    fmt.Errorf("invalid queries: [%s]", strings.Join(c.invalidQueries, ", ")),
			Status: http.StatusBadRequest,
			Fields: c.invalidQueries,
		}
	}
	return nil
}

// BindFunc binds the request body into obj and checks the named fields are
// present (non-nil / non-zero) after binding.
func (c *Context) BindFunc(obj interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(obj); err != nil {
		return &Error{
			Err:    errors.Wrap(err, "binding request"),
			Status: http.StatusBadRequest,
		}
	}

	var missing []string

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for _, name := range requiredFields {
		field := v.FieldByName(name)
		if !field.IsValid() || field.IsZero() {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &Error{
			Err:    fmt.Errorf("required fields: [%s]", strings.Join(missing, ", ")),
			Status: http.StatusBadRequest,
			Fields: missing,
		}
	}

	return nil
}

// Respond converts a Go value to JSON and sends it to the client.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError sends an error response back to the client. *Error values keep
// their status, anything else is treated as an internal error but the message
// is still attached for diagnostics.
func (c *Context) RespondError(err error) error {
	if webErr, ok := err.(*Error); ok {
		c.JSON(webErr.Status, map[string]interface{}{
			"error":  webErr.Err.Error(),
			"fields": webErr.Fields,
			"status": false,
		})
		return webErr.Err
	}

	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":  err.Error(),
		"status": false,
	})
	return err
}

// RespondBytes sends a raw payload, used by the export endpoints.
func (c *Context) RespondBytes(contentType, fileName string, data []byte) error {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK, contentType, data)
	return nil
}
