package request

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMalformedBody is returned when a body is not JSON or does not have
// the shape of a MovieRequest.
var ErrMalformedBody = errors.New("malformed request body")

//go:embed movie_request.schema.json
var movieRequestSchemaJSON string

var movieRequestSchema = mustCompileSchema("movie_request.schema.json", movieRequestSchemaJSON)

// MovieRequest is the candidate movie sent with POST /movies.
type MovieRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ReleaseDate string `json:"releaseDate"`
	Duration    int    `json:"duration"`

	// HasClientID is set when the body carries an "id" member, whatever its value.
	HasClientID bool `json:"-"`
}

// DecodeMovieRequest checks body against the request schema and decodes it.
func DecodeMovieRequest(body []byte) (*MovieRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedBody)
	}

	if err := movieRequestSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrMalformedBody)
	}
	return movieRequestFromFields(fields)
}

// movieRequestFromFields reads members by their exact names, so only keys
// the schema checked can reach the request.
func movieRequestFromFields(fields map[string]any) (*MovieRequest, error) {
	req := &MovieRequest{
		Name:        stringField(fields, "name"),
		Description: stringField(fields, "description"),
		ReleaseDate: stringField(fields, "releaseDate"),
	}

	if n, ok := fields["duration"].(json.Number); ok {
		duration, err := strconv.ParseInt(n.String(), 10, strconv.IntSize)
		if err != nil {
			return nil, fmt.Errorf("%w: duration %s: %v", ErrMalformedBody, n, err)
		}
		req.Duration = int(duration)
	}

	_, req.HasClientID = fields["id"]
	return req, nil
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func mustCompileSchema(name, schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(name, strings.NewReader(schema)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}

	compiled, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return compiled
}
