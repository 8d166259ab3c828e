package templates

const markup = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Employee Management</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50">
<div id="toasts" class="fixed top-4 left-1/2 -translate-x-1/2 z-[60] flex flex-col gap-2"></div>
{{template "app" .}}
<script>
document.body.addEventListener("showToast", function (evt) {
  (evt.detail.toasts || []).forEach(function (t) {
    var el = document.createElement("div");
    el.className = "px-4 py-2 rounded-lg shadow-md text-white " +
      (t.level === "error" ? "bg-red-500" : "bg-green-600");
    el.textContent = t.message;
    document.getElementById("toasts").appendChild(el);
    setTimeout(function () { el.remove(); }, 3000);
  });
});
</script>
</body>
</html>
{{end}}

{{define "app"}}
<div id="app" class="min-h-screen flex flex-col items-center py-10 px-4">
  <h1 class="text-4xl font-extrabold mb-8 text-gray-800">Employee Management</h1>

  <div class="w-full max-w-6xl mb-6 flex justify-between">
    <div class="flex gap-2 text-sm">
      <a href="/employees.pdf" class="px-3 py-2 rounded-lg border border-gray-300 bg-white hover:bg-gray-100">Export PDF</a>
      <a href="/employees.json" class="px-3 py-2 rounded-lg border border-gray-300 bg-white hover:bg-gray-100">Export JSON</a>
    </div>
    <button hx-get="/employees/new" hx-target="#app" hx-swap="outerHTML"
      class="bg-blue-600 text-white px-5 py-2.5 rounded-lg hover:bg-blue-700 shadow-md">
      + Add Employee
    </button>
  </div>

  <div class="w-full max-w-6xl bg-white rounded-xl shadow-lg border border-gray-200 overflow-x-auto">
    <table class="min-w-full">
      <thead class="bg-gray-100">
        <tr>
          <th class="px-6 py-4 text-left text-sm font-semibold text-gray-700 cursor-pointer"
            hx-post="/sort/name" hx-target="#app" hx-swap="outerHTML">Name {{.Arrow "name"}}</th>
          <th class="px-6 py-4 text-left text-sm font-semibold text-gray-700">Date of Birth</th>
          <th class="px-6 py-4 text-left text-sm font-semibold text-gray-700">Gender</th>
          <th class="px-6 py-4 text-left text-sm font-semibold text-gray-700">Email</th>
          <th class="px-6 py-4 text-left text-sm font-semibold text-gray-700 cursor-pointer"
            hx-post="/sort/address" hx-target="#app" hx-swap="outerHTML">Address {{.Arrow "address"}}</th>
          <th class="px-6 py-4 text-left text-sm font-semibold text-gray-700">Action</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr class="hover:bg-gray-50" data-id="{{.ID}}">
          <td class="px-6 py-4 text-gray-800 font-medium border-b border-gray-200">{{.Name}}</td>
          <td class="px-6 py-4 text-gray-700 border-b border-gray-200">{{date .DateOfBirth}}</td>
          <td class="px-6 py-4 text-gray-700 border-b border-gray-200">{{.Gender}}</td>
          <td class="px-6 py-4 text-gray-700 border-b border-gray-200">{{.Email}}</td>
          <td class="px-6 py-4 text-gray-700 border-b border-gray-200">{{.Address}}</td>
          <td class="px-6 py-4 border-b border-gray-200 flex gap-2">
            <button hx-get="/employees/{{.ID}}/edit" hx-target="#app" hx-swap="outerHTML"
              class="bg-yellow-400 hover:bg-yellow-500 text-white px-3 py-1 rounded-lg shadow">Edit</button>
            <button hx-post="/employees/{{.ID}}/delete" hx-target="#app" hx-swap="outerHTML"
              class="bg-red-500 hover:bg-red-600 text-white px-3 py-1 rounded-lg shadow">Delete</button>
          </td>
        </tr>
        {{else}}
        <tr><td colspan="6" class="px-6 py-8 text-center text-gray-500">No employees yet.</td></tr>
        {{end}}
      </tbody>
    </table>

    <div class="flex items-center justify-center gap-2 my-4">
      <button hx-post="/page/prev" hx-target="#app" hx-swap="outerHTML" {{if .PrevDisabled}}disabled{{end}}
        class="px-3 h-8 rounded-md border border-gray-300 bg-white text-sm disabled:opacity-50 disabled:cursor-not-allowed">Previous</button>
      {{$page := .Page}}
      {{range .Pages}}
      <button hx-post="/page/{{itoa .}}" hx-target="#app" hx-swap="outerHTML"
        class="px-3 h-8 rounded-md border text-sm {{if eq . $page}}bg-blue-600 text-white border-blue-600{{else}}bg-white text-gray-700 border-gray-300{{end}}">{{.}}</button>
      {{end}}
      <button hx-post="/page/next" hx-target="#app" hx-swap="outerHTML" {{if .NextDisabled}}disabled{{end}}
        class="px-3 h-8 rounded-md border border-gray-300 bg-white text-sm disabled:opacity-50 disabled:cursor-not-allowed">Next</button>
    </div>
  </div>

  {{if .Form.Open}}{{template "form-dialog" .Form}}{{end}}
  {{if .Delete.Visible}}{{template "delete-dialog" .Delete}}{{end}}
</div>
{{end}}

{{define "form-dialog"}}
<div id="form-dialog" class="fixed inset-0 flex items-center justify-center z-50 bg-black/30 px-4">
  <div class="bg-white rounded-xl shadow-2xl w-full max-w-lg p-6 relative">
    <button hx-post="/form/cancel" hx-target="#app" hx-swap="outerHTML"
      class="absolute top-4 right-4 px-2 rounded-full hover:bg-gray-200">&times;</button>
    <h2 class="text-2xl font-bold mb-5 text-gray-800">{{.Title}}</h2>
    <form hx-post="/form/submit" hx-target="#app" hx-swap="outerHTML" class="space-y-4">
      {{range .Fields}}{{template "field" .}}{{end}}
      {{template "form-actions" .}}
    </form>
  </div>
</div>
{{end}}

{{define "field"}}
<div>
  <label class="block mb-1 font-medium text-gray-700">{{.Label}}</label>
  {{if .Options}}
  <div class="flex gap-6">
    {{range .Options}}
    <label class="flex items-center gap-2">
      <input type="radio" name="{{$.Name}}" value="{{.}}" {{if eq $.Value .}}checked{{end}}
        hx-post="/form/field" hx-trigger="change" hx-target="#form-actions" hx-swap="outerHTML"
        hx-vals='{"field":"{{$.Name}}"}'>
      {{.}}
    </label>
    {{end}}
  </div>
  {{else}}
  <input type="{{.Type}}" name="{{.Name}}" value="{{.Value}}" placeholder="{{.Placeholder}}"
    hx-post="/form/field" hx-trigger="input changed delay:200ms" hx-target="#form-actions" hx-swap="outerHTML"
    hx-vals='{"field":"{{.Name}}"}'
    class="w-full border border-gray-300 rounded-lg px-3 py-2 focus:outline-none focus:ring-2 focus:ring-blue-400">
  {{end}}
  {{template "field-error" .}}
</div>
{{end}}

{{define "field-error"}}<p id="error-{{.Name}}" class="text-red-500 text-sm mt-1">{{.Error}}</p>{{end}}

{{define "form-actions"}}
<div id="form-actions" class="flex justify-end gap-3 mt-4">
  <button type="button" hx-post="/form/cancel" hx-target="#app" hx-swap="outerHTML"
    class="bg-gray-300 text-gray-700 py-2.5 px-4 rounded-lg hover:bg-gray-400">Cancel</button>
  <button type="submit" {{if .SubmitDisabled}}disabled{{end}}
    class="bg-blue-600 text-white py-2.5 px-4 rounded-lg hover:bg-blue-700 shadow-md disabled:opacity-50 disabled:cursor-not-allowed">{{.SubmitLabel}}</button>
</div>
{{end}}

{{define "field-changed"}}
{{template "form-actions" .Form}}
<p id="error-{{.Field}}" class="text-red-500 text-sm mt-1" hx-swap-oob="true"></p>
{{end}}

{{define "delete-dialog"}}
<div id="delete-dialog" class="fixed inset-0 flex items-center justify-center z-50 bg-black/30 px-4">
  <div class="bg-white rounded-xl shadow-2xl w-full max-w-sm p-6">
    <h2 class="text-xl font-bold mb-4 text-gray-800">Confirm Delete</h2>
    <p class="mb-6 text-gray-700">Are you sure you want to delete {{if .Name}}{{.Name}}{{else}}this employee{{end}}?</p>
    <div class="flex justify-end gap-3">
      <button hx-post="/delete/cancel" hx-target="#app" hx-swap="outerHTML"
        class="px-4 py-2 rounded-lg border border-gray-300 hover:bg-gray-100">Cancel</button>
      <button hx-post="/delete/confirm" hx-target="#app" hx-swap="outerHTML"
        class="px-4 py-2 rounded-lg bg-red-500 text-white hover:bg-red-600">Delete</button>
    </div>
  </div>
</div>
{{end}}
`
