package main

import (
	"html"
	"strconv"

	"github.com/indigo-web/webserv"
	"github.com/indigo-web/webserv/http/mime"
	"github.com/indigo-web/webserv/kv"
	"github.com/indigo-web/webserv/render"
	"github.com/indigo-web/webserv/router/resource"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const greeting = "<!DOCTYPE html><html><body><h1>Hello, ${name}!</h1></body></html>"

func sqr() resource.Handler {
	return resource.New(func(params *kv.Storage) string {
		n, err := resource.Int8(params, "n")
		if err != nil {
			return "n must be an integer within [-128, 127]"
		}

		return strconv.Itoa(int(n) * int(n))
	}, resource.Int8Param("n", resource.Query))
}

type sumResult struct {
	Terms *kv.Storage `json:"terms"`
	Sum   int         `json:"sum"`
	Error string      `json:"error,omitempty"`
}

// sum adds up all the n parameters.
func sum() resource.Handler {
	return resource.New(func(params *kv.Storage) string {
		result := sumResult{Terms: params}

		for value := range params.Values("n") {
			n, err := strconv.ParseInt(value, 10, 8)
			if err != nil {
				result.Error = "every n must be an integer within [-128, 127]"
				break
			}

			result.Sum += int(n)
		}

		return marshal(result)
	}, resource.Int8Param("n", resource.Query)).WithContentType(mime.JSON)
}

func greet() resource.Handler {
	return resource.New(func(params *kv.Storage) string {
		return render.Template(greeting, map[string]string{
			"name": html.EscapeString(params.ValueOr("name", "stranger")),
		})
	}, resource.StringParam("name", resource.Query)).WithContentType(mime.WithCharset(mime.HTML))
}

func status(app *webserv.App) resource.Handler {
	return resource.New(func(*kv.Storage) string {
		return marshal(app.Stats())
	}).WithContentType(mime.JSON)
}

func marshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"error":"` + err.Error() + `"}`
	}

	return string(data)
}
