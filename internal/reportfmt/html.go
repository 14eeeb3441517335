package reportfmt

import (
	"fmt"
	"html"
	"io"
	"strings"

	"tidyscope/internal/aggregate"
	"tidyscope/internal/diag"
)

// HTML renders the self-contained interactive report: summary chips,
// severity/check dropdowns, a live search box over file and message text,
// the record table and the By Check breakdown. All styling and filtering
// logic is inlined so the artifact can be archived or attached to a CI job
// as a single file. Expects records already in display order and groups from
// aggregate.GroupByCheck.
func HTML(w io.Writer, records []diag.Record, sum aggregate.Summary, groups []aggregate.CheckGroup, opts HTMLOpts) error {
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	maxExamples := opts.MaxExamples
	if maxExamples <= 0 {
		maxExamples = defaultMaxExamples
	}

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"en\"><head>\n")
	b.WriteString("<meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n" + reportCSS + "</style>\n</head><body>\n")
	fmt.Fprintf(&b, "  <h1>%s</h1>\n", html.EscapeString(title))

	writeChips(&b, sum, opts)
	writeFilters(&b, groups)
	writeTable(&b, records, opts)
	writeByCheck(&b, groups, maxExamples)

	b.WriteString("  <div class=\"footer muted\">Config: .clang-tidy • Generated from clang-tidy logs</div>\n")
	b.WriteString("<script>\n" + reportJS + "</script>\n</body></html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeChips(b *strings.Builder, sum aggregate.Summary, opts HTMLOpts) {
	b.WriteString("  <div class=\"chips\">\n")
	fmt.Fprintf(b, "    <div class=\"chip\"><strong>Total</strong> %d</div>\n", sum.Total)
	fmt.Fprintf(b, "    <div class=\"chip\"><span class=\"sev-error\"><strong>Errors</strong></span> %d</div>\n", sum.Errors)
	fmt.Fprintf(b, "    <div class=\"chip\"><span class=\"sev-warning\"><strong>Warnings</strong></span> %d</div>\n", sum.Warnings)
	if opts.NewKeys != nil {
		fmt.Fprintf(b, "    <div class=\"chip\"><span class=\"new-badge\">New</span> %d</div>\n", len(opts.NewKeys))
	}
	fmt.Fprintf(b, "    <div class=\"chip\"><strong>Files</strong> %d</div>\n", sum.Files)
	fmt.Fprintf(b, "    <div class=\"chip\"><strong>Checks</strong> %d</div>\n", sum.Checks)
	b.WriteString("  </div>\n")
}

func writeFilters(b *strings.Builder, groups []aggregate.CheckGroup) {
	b.WriteString(`  <div class="filters">
    <label>Severity:
      <select id="sev">
        <option value="">All</option>
        <option value="error">Error</option>
        <option value="warning">Warning</option>
      </select>
    </label>
    <label>Check:
      <select id="check">
        <option value="">All</option>
`)
	for _, g := range groups {
		if g.Check == "" {
			continue
		}
		fmt.Fprintf(b, "        <option value='%s'>%s (%d)</option>\n",
			html.EscapeString(g.Check), html.EscapeString(g.Check), len(g.Records))
	}
	b.WriteString(`      </select>
    </label>
    <label class="nowrap">Search:
      <input id="q" type="search" placeholder="file / message contains…">
    </label>
  </div>
`)
}

func writeTable(b *strings.Builder, records []diag.Record, opts HTMLOpts) {
	b.WriteString(`  <table id="tbl">
    <thead><tr>
      <th class="nowrap">Severity</th>
      <th>Check</th>
      <th>Message</th>
      <th>File</th>
      <th class="nowrap">Line:Col</th>
    </tr></thead>
    <tbody>
`)
	for _, r := range records {
		sev := html.EscapeString(r.Severity.String())
		fmt.Fprintf(b, "      <tr data-sev='%s' data-check='%s' data-file='%s' data-msg='%s'>",
			sev, html.EscapeString(r.Check), html.EscapeString(r.Path), html.EscapeString(r.Message))
		fmt.Fprintf(b, "<td class='sev-%s'>%s</td>", sev, sev)
		fmt.Fprintf(b, "<td><code>%s</code></td>", checkCell(r.Check))
		fmt.Fprintf(b, "<td>%s%s</td>", newBadge(r, opts.NewKeys), html.EscapeString(r.Message))
		fmt.Fprintf(b, "<td class='nowrap'>%s</td>", html.EscapeString(r.Path))
		fmt.Fprintf(b, "<td class='nowrap'>%d:%d</td></tr>\n", r.Line, r.Col)
	}
	if len(records) == 0 {
		b.WriteString("      <tr id='empty'><td colspan='5' class='muted'>No diagnostics.</td></tr>\n")
	}
	b.WriteString("    </tbody>\n  </table>\n")
}

func writeByCheck(b *strings.Builder, groups []aggregate.CheckGroup, maxExamples int) {
	b.WriteString(`  <div class="section">
    <h2>By Check</h2>
    <table>
      <thead><tr><th>Check</th><th>Count</th><th>Examples</th></tr></thead>
      <tbody>
`)
	if len(groups) == 0 {
		b.WriteString("        <tr><td colspan='3' class='muted'>No diagnostics.</td></tr>\n")
	}
	for _, g := range groups {
		b.WriteString("        <tr>")
		fmt.Fprintf(b, "<td><code>%s</code></td><td>%d</td><td>", checkCell(g.Check), len(g.Records))
		examples := g.Records
		if len(examples) > maxExamples {
			examples = examples[:maxExamples]
		}
		for _, r := range examples {
			fmt.Fprintf(b, "<div><span class='nowrap'>%s:%d</span> — %s</div>",
				html.EscapeString(r.Path), r.Line, html.EscapeString(r.Message))
		}
		b.WriteString("</td></tr>\n")
	}
	b.WriteString("      </tbody>\n    </table>\n  </div>\n")
}

func checkCell(check string) string {
	if check == "" {
		return "—"
	}
	return html.EscapeString(check)
}

func newBadge(r diag.Record, newKeys map[diag.Key]struct{}) string {
	if newKeys == nil {
		return ""
	}
	if _, ok := newKeys[r.Key()]; !ok {
		return ""
	}
	return "<span class='new-badge'>new</span> "
}

const reportCSS = `  :root{--bg:#0b0d10;--fg:#e6edf3;--muted:#9aa7b1;--row:#11151a;--accent:#2f81f7;--warn:#f5a623;--err:#ff4d4f;--note:#7aa2f7;--new:#3fb950}
  body{background:var(--bg);color:var(--fg);font:14px/1.45 ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Arial,sans-serif;margin:24px}
  h1{margin:0 0 16px 0;font-size:22px}
  .muted{color:var(--muted)}
  .chips{display:flex;gap:8px;flex-wrap:wrap;margin:6px 0 16px 0}
  .chip{background:#1a2129;border:1px solid #223041;padding:4px 10px;border-radius:999px;font-size:12px}
  .chip strong{color:var(--fg)}
  .filters{display:flex;gap:12px;margin:14px 0 18px 0;align-items:center}
  select,input[type="search"]{background:#0f141a;color:var(--fg);border:1px solid #223041;padding:6px 10px;border-radius:8px}
  table{width:100%;border-collapse:collapse}
  th,td{text-align:left;padding:10px 8px;border-bottom:1px solid #1f2630}
  tr{background:var(--row)} tr:hover{background:#141a22}
  th{position:sticky;top:0;background:#0e141b;z-index:2}
  code{background:#0f141a;padding:2px 6px;border-radius:6px}
  .sev-warning{color:var(--warn)} .sev-error{color:var(--err)} .sev-note{color:var(--note)}
  .new-badge{color:var(--new);font-weight:600;font-size:11px;text-transform:uppercase}
  .footer{margin-top:18px;font-size:12px;color:var(--muted)} .nowrap{white-space:nowrap}
`

const reportJS = `(() => {
  const sevSel=document.getElementById('sev');
  const chkSel=document.getElementById('check');
  const q=document.getElementById('q');
  const rows=Array.from(document.querySelectorAll('#tbl tbody tr[data-sev]'));
  function matches(r){
    const s=sevSel.value,c=chkSel.value,t=q.value.toLowerCase().trim();
    if(s && r.dataset.sev!==s) return false;
    if(c && r.dataset.check!==c) return false;
    if(t){const hay=(r.dataset.file+' '+r.dataset.msg).toLowerCase(); if(!hay.includes(t)) return false;}
    return true;
  }
  function apply(){
    let any=false;
    rows.forEach(r=>{const ok=matches(r); r.style.display=ok?'':'none'; if(ok) any=true;});
    document.getElementById('empty')?.remove();
    if(!any){
      const tr=document.createElement('tr'); tr.id='empty';
      tr.innerHTML="<td colspan='5' class='muted'>No rows match.</td>";
      document.querySelector('#tbl tbody').appendChild(tr);
    }
  }
  [sevSel,chkSel].forEach(e=>e.addEventListener('change',apply));
  q.addEventListener('input',apply);
})();
`
