// Package testsite serves fixture pages for the browser backend tests.
//
// Pages:
//   - "/": calls console.log, console.error and console.warn, in that order
//   - "/ready": logs "ready" after a short delay
//   - "/tall": a page taller than a typical viewport, for full-page captures
package testsite

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Messages are the console messages the index page emits, in order.
var Messages = []struct{ Type, Text string }{
	{"log", "hello from log"},
	{"error", "hello from error"},
	{"warning", "hello from warn"},
}

const indexPage = `<!doctype html>
<html><head><title>pagecheck fixture</title></head>
<body>
<p>console fixture</p>
<script>
console.log("hello from log");
console.error("hello from error");
console.warn("hello from warn");
</script>
</body></html>
`

const readyPage = `<!doctype html>
<html><head><title>pagecheck ready</title></head>
<body>
<p id="status">loading</p>
<script>
setTimeout(function () {
  document.getElementById("status").textContent = "ready";
  console.log("ready");
}, %d);
</script>
</body></html>
`

const tallPage = `<!doctype html>
<html><head><title>pagecheck tall</title></head>
<body style="margin:0">
<div style="height:3000px;background:linear-gradient(#fff,#000)"></div>
</body></html>
`

// ReadyDelayMS is how long the /ready page waits before logging "ready".
const ReadyDelayMS = 300

// New starts the fixture server and closes it when the test ends.
// It returns the server's base URL.
func New(t testing.TB) string {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", serve(indexPage))
	mux.HandleFunc("/ready", serve(fmt.Sprintf(readyPage, ReadyDelayMS)))
	mux.HandleFunc("/tall", serve(tallPage))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

func serve(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, body)
	}
}
