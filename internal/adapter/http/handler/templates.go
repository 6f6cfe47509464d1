package handler

import (
	"html/template"
	"strings"

	"hemstore-gateway/internal/core/ports"
)

// Browser-facing pages for the gateway hops. html/template escaping is the
// defense against callback data landing in markup.

var autoSubmitTmpl = template.Must(template.New("autosubmit").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting&hellip;</title></head>
<body onload="document.forms[0].submit()">
<p>Redirecting to the payment provider&hellip;</p>
<form method="post" action="{{.Action}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue</button></noscript>
</form>
</body>
</html>
`))

// renderAutoSubmitForm renders a self-submitting POST form to the gateway.
func renderAutoSubmitForm(form *ports.GatewayForm) (string, error) {
	var b strings.Builder
	if err := autoSubmitTmpl.Execute(&b, form); err != nil {
		return "", err
	}
	return b.String(), nil
}

var storeRelayTmpl = template.Must(template.New("storerelay").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Store selected</title></head>
<body>
<p>Store selected. Returning to checkout&hellip;</p>
<script>
(function () {
  var payload = {type: "cvs-store-selected", store: {{.Store}}};
  if (window.opener && !window.opener.closed) {
    window.opener.postMessage(payload, {{.Origin}});
    window.close();
    return;
  }
  window.location.replace({{.CheckoutURL}});
})();
</script>
<noscript><a href="{{.CheckoutURL}}">Back to checkout</a></noscript>
</body>
</html>
`))

type storeRelayPage struct {
	Store       interface{}
	Origin      string
	CheckoutURL string
}

// renderStoreRelayPage renders the picker-window page: hand the selection
// to a live opener via postMessage, otherwise fall back to the ticket
// cookie set alongside and navigate the window itself back to checkout.
func renderStoreRelayPage(p storeRelayPage) (string, error) {
	var b strings.Builder
	if err := storeRelayTmpl.Execute(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}

var clientRedirectTmpl = template.Must(template.New("clientredirect").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="0; url={{.URL}}">
<title>Returning&hellip;</title>
</head>
<body>
<p><a href="{{.URL}}">Continue</a></p>
<script>window.location.replace({{.URL}});</script>
</body>
</html>
`))

// renderClientRedirect renders a page that navigates back to the storefront.
func renderClientRedirect(url string) (string, error) {
	var b strings.Builder
	if err := clientRedirectTmpl.Execute(&b, struct{ URL string }{URL: url}); err != nil {
		return "", err
	}
	return b.String(), nil
}
