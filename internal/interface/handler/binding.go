package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"partner-portal-service/internal/domain/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const validationFailed = "validation failed"

var setupValidatorOnce sync.Once

// setupValidator makes gin's validator report form or json field names
// instead of Go field names.
func setupValidator() {
	setupValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return field.Name
		})
	})
}

var timeType = reflect.TypeOf(time.Time{})

// decodeQuery fills the struct pointed to by dst from query values using its
// form tags. Empty values count as absent. Coercion failures are returned as
// issues and leave the field unset.
func decodeQuery(values url.Values, dst any) []apperror.Issue {
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()

	var issues []apperror.Issue
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := field.Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}

		raw := nonEmpty(values[name])
		if len(raw) == 0 {
			continue
		}

		if msg := setField(rv.Field(i), raw); msg != "" {
			issues = append(issues, apperror.Issue{Path: name, Message: msg})
		}
	}
	return issues
}

func nonEmpty(raw []string) []string {
	out := raw[:0:0]
	for _, v := range raw {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// setField converts raw into the field type. It returns a message on failure.
func setField(f reflect.Value, raw []string) string {
	if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String {
		f.Set(reflect.ValueOf(append([]string(nil), raw...)))
		return ""
	}
	if len(raw) > 1 {
		return "must be a single value"
	}
	value := raw[0]

	switch f.Kind() {
	case reflect.String:
		f.SetString(value)
		return ""
	case reflect.Ptr:
	default:
		return "unsupported field"
	}

	elem := f.Type().Elem()
	var parsed any
	switch {
	case elem == timeType:
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return "must be an RFC 3339 timestamp"
		}
		parsed = t
	case elem.Kind() == reflect.String:
		parsed = value
	case elem.Kind() == reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "must be an integer"
		}
		parsed = n
	case elem.Kind() == reflect.Float64:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return "must be a number"
		}
		parsed = n
	case elem.Kind() == reflect.Bool:
		switch value {
		case "true":
			parsed = true
		case "false":
			parsed = false
		default:
			return "must be true or false"
		}
	default:
		return "unsupported field"
	}

	ptr := reflect.New(elem)
	ptr.Elem().Set(reflect.ValueOf(parsed).Convert(elem))
	f.Set(ptr)
	return ""
}

// bindQuery decodes and validates the query string into dst
func bindQuery(c *gin.Context, dst any) error {
	issues := decodeQuery(c.Request.URL.Query(), dst)

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		issues = append(issues, validationIssues(err)...)
	}

	if len(issues) > 0 {
		return apperror.Validation(validationFailed, issues...)
	}
	return nil
}

// bindJSON decodes and validates a JSON body into dst
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperror.Validation(validationFailed, jsonIssues(err)...)
	}
	return nil
}

func jsonIssues(err error) []apperror.Issue {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		return validationIssues(err)
	case errors.As(err, &typeErr):
		return []apperror.Issue{{Path: typeErr.Field, Message: fmt.Sprintf("must be of type %s", jsonTypeName(typeErr.Type))}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []apperror.Issue{{Path: "", Message: "malformed JSON body"}}
	case errors.Is(err, io.EOF):
		return []apperror.Issue{{Path: "", Message: "request body is required"}}
	default:
		return []apperror.Issue{{Path: "", Message: "invalid request body"}}
	}
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "number"
	case reflect.Slice:
		return "array"
	default:
		return "object"
	}
}

func validationIssues(err error) []apperror.Issue {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []apperror.Issue{{Path: "", Message: err.Error()}}
	}

	issues := make([]apperror.Issue, 0, len(validationErrs))
	for _, fe := range validationErrs {
		issues = append(issues, apperror.Issue{
			Path:    issuePath(fe.Namespace()),
			Message: issueMessage(fe),
		})
	}
	return issues
}

// issuePath drops the struct name from a validator namespace
func issuePath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		if fe.Param() == "2006-01-02" {
			return "must be a date in YYYY-MM-DD format"
		}
		return "must be an RFC 3339 timestamp"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "numeric":
		return "must be numeric"
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}
