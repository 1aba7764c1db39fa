package composer

import (
	"html/template"
	"strings"

	"github.com/NethermindEth/lovenotes/pkg/composer/phrasebook"
)

const pageTemplateName = "index"

type pageData struct {
	ContentTypes   []phrasebook.ContentType
	Examples       map[string]string
	PinningEnabled bool
	MinLength      int
	MaxLength      int
	DefaultLength  int
}

func (c *Composer) pageData() pageData {
	examples := make(map[string]string)
	for _, bank := range c.phrasebook.Banks() {
		examples[string(bank.Category())] = strings.Join(bank.Words(), ", ")
	}

	return pageData{
		ContentTypes:   c.phrasebook.ContentTypes(),
		Examples:       examples,
		PinningEnabled: c.PinningEnabled(),
		MinLength:      30,
		MaxLength:      100,
		DefaultLength:  60,
	}
}

var pageTemplate = template.Must(template.New(pageTemplateName).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>💘 Love &amp; Flirty Content Generator</title>
<style>
body { font-family: sans-serif; background: #fdf2f8; max-width: 960px; margin: 2rem auto; }
.tabs button { padding: .5rem 1rem; border: none; background: #fbcfe8; cursor: pointer; }
.tabs button.active { background: #f472b6; color: #fff; }
.tab { display: none; gap: 2rem; margin-top: 1rem; }
.tab.active { display: flex; }
.tab > div { flex: 1; }
label { display: block; margin-top: .75rem; }
input[type=text], textarea { width: 100%; box-sizing: border-box; }
textarea { min-height: 8rem; }
</style>
</head>
<body>
<h2>💘 Love &amp; Flirty Content Generator</h2>
<p>Choose between handcrafted templates or AI-generated romantic messages. Customize your words or let the app surprise you!</p>

<div class="tabs">
  <button class="active" data-tab="template-tab">Template Generator</button>
  <button data-tab="model-tab">AI Generator</button>
</div>

<form id="template-tab" class="tab active">
  <div>
    <label>Content Type</label>
    {{range $i, $ct := .ContentTypes}}
    <label><input type="radio" name="content_type" value="{{$ct}}" {{if eq $i 0}}checked{{end}}> {{$ct}}</label>
    {{end}}
    <label>Custom Adjective <input type="text" name="adjective" placeholder="e.g., enchanting" title="{{index .Examples "adjective"}}"></label>
    <label>Custom Noun <input type="text" name="noun" placeholder="e.g., star" title="{{index .Examples "noun"}}"></label>
    <label>Custom Verb <input type="text" name="verb" placeholder="e.g., smile" title="{{index .Examples "verb"}}"></label>
    <button type="submit">Generate Template Message</button>
  </div>
  <div>
    <label>Generated Message <textarea name="output" rows="4" readonly></textarea></label>
    {{if .PinningEnabled}}<button type="button" class="pin">Pin to IPFS</button>{{end}}
  </div>
</form>

<form id="model-tab" class="tab">
  <div>
    <label>Prompt <input type="text" name="prompt" placeholder="e.g., Write a romantic message about starlight and butterflies"></label>
    <label>Max Length <input type="range" name="max_length" min="{{.MinLength}}" max="{{.MaxLength}}" value="{{.DefaultLength}}"></label>
    <button type="submit">Generate with GPT</button>
  </div>
  <div>
    <label>Generated Text <textarea name="output" rows="6" readonly></textarea></label>
    {{if .PinningEnabled}}<button type="button" class="pin">Pin to IPFS</button>{{end}}
  </div>
</form>

<script>
document.querySelectorAll(".tabs button").forEach(function (button) {
  button.addEventListener("click", function () {
    document.querySelectorAll(".tabs button, .tab").forEach(function (el) { el.classList.remove("active"); });
    button.classList.add("active");
    document.getElementById(button.dataset.tab).classList.add("active");
  });
});

function wire(formId, endpoint, payload) {
  var form = document.getElementById(formId);
  form.addEventListener("submit", async function (event) {
    event.preventDefault();
    var resp = await fetch(endpoint, {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(payload(form)),
    });
    var body = resp.ok ? await resp.json() : {text: await resp.text()};
    form.output.value = body.text;
    form.dataset.messageId = body.id || "";
  });
  var pin = form.querySelector(".pin");
  if (pin) {
    pin.addEventListener("click", async function () {
      if (!form.dataset.messageId) { return; }
      var resp = await fetch("/api/messages/" + form.dataset.messageId + "/pin", {method: "POST"});
      var body = resp.ok ? await resp.json() : {cid: await resp.text()};
      alert(body.cid);
    });
  }
}

wire("template-tab", "/api/template", function (form) {
  return {
    content_type: form.querySelector("input[name=content_type]:checked").value,
    adjective: form.adjective.value,
    noun: form.noun.value,
    verb: form.verb.value,
  };
});

wire("model-tab", "/api/model", function (form) {
  return {prompt: form.prompt.value, max_length: parseInt(form.max_length.value, 10)};
});
</script>
</body>
</html>
`))
