package cell

import (
	"image"
	"strings"
	"testing"
)

func TestFunToTeX(t *testing.T) {
	env, _ := newTestEnv()
	tests := []struct {
		name string
		want string
	}{
		{"sin", `\sin{(x)}`},
		{"cosh", `\cosh{(x)}`},
		{"tan", `\tan{(x)}`},
		{"foo", "foo(x)"},
		{"f", "f(x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := funCall(env, tt.name, "x").ToTeX(); got != tt.want {
				t.Fatalf("ToTeX() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunForms(t *testing.T) {
	env, _ := newTestEnv()
	c := funCall(env, "sin", "x")
	if got := c.ToString(); got != "sin(x)" {
		t.Fatalf("ToString() = %q", got)
	}
	if got := c.ToXML(); got != "<fn><r><fnm>sin</fnm></r><p><v>x</v></p></fn>" {
		t.Fatalf("ToXML() = %q", got)
	}
	if got := c.ToMathML(); got != "<mrow><mi>sin</mi><mo>&#x2061;</mo><mrow><mo>(</mo><mi>x</mi><mo>)</mo></mrow></mrow>" {
		t.Fatalf("ToMathML() = %q", got)
	}
}

func limitCell(env *Env, target ...Cell) *LimitCell {
	under := list(append([]Cell{variable(env, "x"), operator(env, "->")}, target...)...)
	return NewLimitCell(env, function(env, "lim"), under, funCall(env, "f", "x"))
}

func TestLimitText(t *testing.T) {
	env, _ := newTestEnv()
	tests := []struct {
		name   string
		cell   *LimitCell
		text   string
		matlab string
		tex    string
	}{
		{
			name:   "two sided",
			cell:   limitCell(env, number(env, "0")),
			text:   "limit(f(x),x,0)",
			matlab: "limit(f(x),x,0)",
			tex:    `\lim_{x\to 0}{f(x)}`,
		},
		{
			name:   "from above",
			cell:   limitCell(env, number(env, "0"), operator(env, "+")),
			text:   "limit(f(x),x,0,plus)",
			matlab: "limit(f(x),x,0,plus)",
			tex:    `\lim_{x\to 0+}{f(x)}`,
		},
		{
			name:   "from below",
			cell:   limitCell(env, number(env, "0"), operator(env, "-")),
			text:   "limit(f(x),x,0,minus)",
			matlab: "limit(f(x),x,0,minus)",
			tex:    `\lim_{x\to 0-}{f(x)}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.ToString(); got != tt.text {
				t.Errorf("ToString() = %q, want %q", got, tt.text)
			}
			if got := tt.cell.ToMatlab(); got != tt.matlab {
				t.Errorf("ToMatlab() = %q, want %q", got, tt.matlab)
			}
			if got := tt.cell.ToTeX(); got != tt.tex {
				t.Errorf("ToTeX() = %q, want %q", got, tt.tex)
			}
		})
	}
}

func TestLimitMathMLKeepsBase(t *testing.T) {
	env, _ := newTestEnv()
	got := limitCell(env, number(env, "0")).ToMathML()
	if !strings.HasPrefix(got, "<mrow><munder><mo>lim</mo>") || !strings.Contains(got, "<mi>f</mi>") {
		t.Fatalf("ToMathML() = %q", got)
	}
}

func TestSplitUnder(t *testing.T) {
	tex := append(limitArrows, texArrow)
	tests := []struct {
		under string
		seps  []string
		sided bool
		v, to string
	}{
		{"x->0", limitArrows, true, "x", "0"},
		{"x->inf", limitArrows, true, "x", "inf"},
		{"x->a+", limitArrows, true, "x", "a,plus"},
		{"x->a-", limitArrows, true, "x", "a,minus"},
		{"x->a-", limitArrows, false, "x", "a-"},
		{"x", limitArrows, true, "x", ""},
		{"x\u21920", limitArrows, true, "x", "0"},
		{"x\u2192a-", limitArrows, true, "x", "a,minus"},
		{"x->y\u21920", limitArrows, true, "x", "y\u21920"},
		{`x\mbox{\rightarrow }0`, tex, false, "x", "0"},
	}
	for _, tt := range tests {
		v, to := splitUnder(tt.under, tt.sided, tt.seps...)
		if v != tt.v || to != tt.to {
			t.Errorf("splitUnder(%q) = %q, %q, want %q, %q", tt.under, v, to, tt.v, tt.to)
		}
	}
}

func TestLimitUnicodeArrow(t *testing.T) {
	env, _ := newTestEnv()
	c := NewLimitCell(env, function(env, "lim"),
		list(variable(env, "x"), NewTextCell(env, "\u2192", TextStyleDefault), number(env, "0")), funCall(env, "f", "x"))
	if got, want := c.ToString(), "limit(f(x),x,0)"; got != want {
		t.Errorf("ToString() = %q, want %q", got, want)
	}
	if got, want := c.ToMatlab(), "limit(f(x),x,0)"; got != want {
		t.Errorf("ToMatlab() = %q, want %q", got, want)
	}
}

func TestLimitUnderFontSize(t *testing.T) {
	env, _ := newTestEnv()
	c := NewLimitCell(env, function(env, "lim"), variable(env, "x"), variable(env, "y"))
	tests := []struct {
		min, size, want float64
	}{
		{8, 12, 11},
		{8, 8, 8},
		{11, 11.5, 11},
		{4, 6.5, MinSize},
	}
	for _, tt := range tests {
		env.MinFontSize = tt.min
		if got := c.underSize(tt.size); got != tt.want {
			t.Errorf("underSize(%v) with minimum %v = %v, want %v", tt.size, tt.min, got, tt.want)
		}
	}
}

func TestSubSupConventional(t *testing.T) {
	env, _ := newTestEnv()
	c := NewSubSupCell(env, variable(env, "x"))
	c.SetIndex(number(env, "1"))
	c.SetExponent(number(env, "2"))

	if got := c.ToString(); got != "x[1]^2" {
		t.Errorf("ToString() = %q", got)
	}
	if got := c.ToTeX(); got != "{{x}_{1}^{2}}" {
		t.Errorf("ToTeX() = %q", got)
	}
	env.TeXExponentsAfterSubscript = true
	if got := c.ToTeX(); got != "{{{x}_{1}}^{2}}" {
		t.Errorf("ToTeX() with exponents after subscript = %q", got)
	}
	if got := c.ToMathML(); got != "<msubsup><mi>x</mi><mn>1</mn><mn>2</mn></msubsup>" {
		t.Errorf("ToMathML() = %q", got)
	}
	if got := c.ToXML(); got != "<ie><r><v>x</v></r><r><n>1</n></r><r><n>2</n></r></ie>" {
		t.Errorf("ToXML() = %q", got)
	}
	if len(c.Scripts()) != 0 {
		t.Errorf("conventional scripts are positional: %d", len(c.Scripts()))
	}
}

func TestSubSupPrescripts(t *testing.T) {
	env, _ := newTestEnv()
	c := NewSubSupCell(env, variable(env, "x"))
	c.SetPreSub(variable(env, "a"))
	c.SetPostSup(variable(env, "b"))

	if got := c.ToString(); got != "x[a][b]" {
		t.Errorf("ToString() = %q", got)
	}
	if got := c.ToMatlab(); got != "x[a;b]" {
		t.Errorf("ToMatlab() = %q", got)
	}
	if got := c.ToTeX(); got != "{}_{a}{x}^{b}" {
		t.Errorf("ToTeX() = %q", got)
	}
	want := "<mmultiscripts><mi>x</mi><none/><mrow><mi>b</mi></mrow><mprescripts/><mrow><mi>a</mi></mrow><none/></mmultiscripts>"
	if got := c.ToMathML(); got != want {
		t.Errorf("ToMathML() = %q", got)
	}
	want = `<ie><r><v>x</v></r><r pos="presub"><v>a</v></r><r pos="postsup"><v>b</v></r></ie>`
	if got := c.ToXML(); got != want {
		t.Errorf("ToXML() = %q", got)
	}
	if omml := c.ToOMML(); strings.Count(omml, "<m:sSubSup>") != 2 || !strings.Contains(omml, "<m:r></m:r>") {
		t.Errorf("ToOMML() = %q", omml)
	}
}

func TestSubSupSetters(t *testing.T) {
	env, _ := newTestEnv()
	c := NewSubSupCell(env, variable(env, "x"))
	a, b := variable(env, "a"), variable(env, "b")

	c.SetPreSub(a)
	c.SetPreSub(b)
	if c.PreSub() != b {
		t.Fatal("position not replaced")
	}
	if s := c.Scripts(); len(s) != 1 || s[0] != b {
		t.Fatalf("previous occupant kept in scripts: %d", len(s))
	}
	c.SetPreSub(nil)
	if c.PreSub() != b {
		t.Fatal("nil cleared position")
	}
	if !b.ExponentFlag() {
		t.Fatal("script not marked as exponent")
	}

	c.SetPostSub(a)
	if s := c.Scripts(); len(s) != 2 || s[1] != a {
		t.Fatal("scripts are not kept in order of assignment")
	}

	cp := c.Copy().(*SubSupCell)
	if cp.ToXML() != c.ToXML() || len(cp.Scripts()) != 2 {
		t.Fatalf("copy %q differs from %q", cp.ToXML(), c.ToXML())
	}
}

func TestSubSupLayout(t *testing.T) {
	env, _ := newTestEnv()
	plain := variable(env, "x")
	plain.Recalculate(12)

	c := NewSubSupCell(env, variable(env, "x"))
	c.SetPreSup(number(env, "2"))
	c.SetPostSub(number(env, "1"))
	c.Recalculate(12)

	pre, post := c.scriptWidths()
	if c.Width() != pre+plain.Width()+post {
		t.Fatalf("width %d is not sum of parts %d+%d+%d", c.Width(), pre, plain.Width(), post)
	}
	if c.Center() < plain.Center() || c.Drop() < plain.Drop() {
		t.Fatal("scripts shrink the base")
	}
	p := &recordingPainter{}
	c.Draw(p, c.Point())
	if len(p.texts) != 3 {
		t.Fatalf("painted %q", p.texts)
	}
}

func TestTextCellForms(t *testing.T) {
	env, _ := newTestEnv()
	tests := []struct {
		name   string
		cell   *TextCell
		text   string
		tex    string
		mathml string
		xml    string
	}{
		{"variable", variable(env, "x"), "x", "x", "<mi>x</mi>", "<v>x</v>"},
		{"long variable", variable(env, "abc"), "abc", `\mathit{abc}`, "<mi>abc</mi>", "<v>abc</v>"},
		{"number", number(env, "3.5"), "3.5", "3.5", "<mn>3.5</mn>", "<n>3.5</n>"},
		{"minus", operator(env, "−"), "-", "-", "<mo>−</mo>", "<mo>-</mo>"},
		{"arrow", operator(env, "->"), "->", `\mbox{\rightarrow }`, "<mo>→</mo>", "<mo>-&gt;</mo>"},
		{"string", NewTextCell(env, `say "hi"`, TextStyleString), `"say \"hi\""`, `\mbox{say "hi"}`,
			"<mtext>say &quot;hi&quot;</mtext>", "<st>say &quot;hi&quot;</st>"},
		{"greek", NewTextCell(env, "%alpha", TextStyleGreekConstant), "%alpha", `\alpha `, "<mi>α</mi>", "<g>%alpha</g>"},
		{"pi", NewTextCell(env, "%pi", TextStyleSpecialConstant), "%pi", `\pi `, "<mi>π</mi>", "<s>%pi</s>"},
		{"error", NewTextCell(env, "oops", TextStyleError), "oops", `\mbox{oops}`, "<mtext>oops</mtext>", `<t type="error">oops</t>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.ToString(); got != tt.text {
				t.Errorf("ToString() = %q, want %q", got, tt.text)
			}
			if got := tt.cell.ToTeX(); got != tt.tex {
				t.Errorf("ToTeX() = %q, want %q", got, tt.tex)
			}
			if got := tt.cell.ToMathML(); got != tt.mathml {
				t.Errorf("ToMathML() = %q, want %q", got, tt.mathml)
			}
			if got := tt.cell.ToXML(); got != tt.xml {
				t.Errorf("ToXML() = %q, want %q", got, tt.xml)
			}
		})
	}
}

func TestCommonXMLAttributes(t *testing.T) {
	env, _ := newTestEnv()
	c := variable(env, "x")
	c.SetForceBreakLine(true)
	c.SetToolTip(`a<b`)
	c.SetAltCopy("y")
	want := `<v breakline="true" tooltip="a&lt;b" altCopy="y">x</v>`
	if got := c.ToXML(); got != want {
		t.Fatalf("ToXML() = %q, want %q", got, want)
	}
	if got := c.ToString(); got != "y" {
		t.Fatalf("alt copy not used, ToString() = %q", got)
	}
}

func TestLabels(t *testing.T) {
	env, _ := newTestEnv()
	c := NewTextCell(env, "(%o1)", TextStyleUserLabel)
	c.SetUserDefinedLabel("eq1")
	if got := c.DisplayText(); got != "(eq1)" {
		t.Fatalf("DisplayText() = %q", got)
	}
	env.Labels = LabelAutomatic
	if got := c.DisplayText(); got != "(%o1)" {
		t.Fatalf("DisplayText() = %q", got)
	}
	env.Labels = LabelNone
	if got := c.DisplayText(); got != "" {
		t.Fatalf("DisplayText() = %q", got)
	}
	want := `<lbl userdefined="yes" userdefinedlabel="eq1">(%o1)</lbl>`
	if got := c.ToXML(); got != want {
		t.Fatalf("ToXML() = %q, want %q", got, want)
	}
}

func TestFracForms(t *testing.T) {
	env, _ := newTestEnv()
	f := NewFracCell(env, list(variable(env, "a"), operator(env, "+"), variable(env, "b")), variable(env, "c"))
	if got := f.ToString(); got != "(a+b)/c" {
		t.Errorf("ToString() = %q", got)
	}
	if got := f.ToTeX(); got != `\frac{a+b}{c}` {
		t.Errorf("ToTeX() = %q", got)
	}
	f.SetFracStyle(FracChoose)
	if got := f.ToString(); got != "binomial(a+b,c)" {
		t.Errorf("ToString() = %q", got)
	}
	if got := f.ToXML(); got != `<f line="no"><r><v>a</v><mo>+</mo><v>b</v></r><r><v>c</v></r></f>` {
		t.Errorf("ToXML() = %q", got)
	}
}

func TestExptMatrixPower(t *testing.T) {
	env, _ := newTestEnv()
	e := NewExptCell(env, variable(env, "A"), number(env, "2"))
	e.SetMatrix(true)
	if got := e.ToString(); got != "A^^2" {
		t.Errorf("ToString() = %q", got)
	}
	if got := e.ToMatlab(); got != "A^2" {
		t.Errorf("ToMatlab() = %q", got)
	}
	if got := e.ToXML(); got != `<e mat="true"><r><v>A</v></r><r><n>2</n></r></e>` {
		t.Errorf("ToXML() = %q", got)
	}
	if !e.Copy().(*ExptCell).IsMatrix() {
		t.Error("copy lost matrix flag")
	}
}

func TestSumAndIntegral(t *testing.T) {
	env, _ := newTestEnv()
	sum := NewSumCell(env, SumSum, list(variable(env, "i"), operator(env, "="), number(env, "1")), variable(env, "n"), variable(env, "a"))
	if got := sum.ToString(); got != "sum(a,i,1,n)" {
		t.Errorf("sum ToString() = %q", got)
	}
	if got := sum.ToTeX(); got != `\sum_{i=1}^{n}{a}` {
		t.Errorf("sum ToTeX() = %q", got)
	}
	prod := NewSumCell(env, SumProd, list(variable(env, "i"), operator(env, "="), number(env, "1")), variable(env, "n"), variable(env, "a"))
	if got := prod.ToXML(); !strings.HasPrefix(got, `<sm type="prod">`) {
		t.Errorf("product ToXML() = %q", got)
	}
	lsum := NewSumCell(env, SumList, list(variable(env, "i"), operator(env, "in"), variable(env, "L")), nil, variable(env, "i"))
	if got := lsum.ToString(); got != "lsum(i,i,L)" {
		t.Errorf("lsum ToString() = %q", got)
	}
	if got := lsum.ToXML(); got != `<sm type="lsum"><r><v>i</v><mo>in</mo><v>L</v></r><r></r><r><v>i</v></r></sm>` {
		t.Errorf("lsum ToXML() = %q", got)
	}

	in := NewIntCell(env, variable(env, "f"), list(function(env, "d"), variable(env, "x")))
	if got := in.ToString(); got != "integrate(f,x)" {
		t.Errorf("integral ToString() = %q", got)
	}
	if got := in.ToXML(); !strings.HasPrefix(got, `<in def="false">`) {
		t.Errorf("integral ToXML() = %q", got)
	}
	def := NewDefiniteIntCell(env, number(env, "0"), number(env, "1"), variable(env, "f"), list(function(env, "d"), variable(env, "x")))
	if got := def.ToString(); got != "integrate(f,x,0,1)" {
		t.Errorf("definite integral ToString() = %q", got)
	}
}

func TestMatrixForms(t *testing.T) {
	env, _ := newTestEnv()
	m := NewMatrCell(env)
	m.NewRow()
	m.AddCell(number(env, "1"))
	m.AddCell(number(env, "2"))
	m.NewRow()
	m.AddCell(number(env, "3"))
	m.AddCell(number(env, "4"))

	if got := m.ToString(); got != "matrix([1,2],[3,4])" {
		t.Errorf("ToString() = %q", got)
	}
	if got := m.ToMatlab(); got != "[1,2;3,4]" {
		t.Errorf("ToMatlab() = %q", got)
	}
	if got := m.ToTeX(); got != "\\begin{bmatrix}\n1 & 2\\\\\n3 & 4\n\\end{bmatrix}" {
		t.Errorf("ToTeX() = %q", got)
	}
	m.SetRoundedParens(true)
	if got := m.ToXML(); got != `<tb roundedParens="true"><mtr><mtd><n>1</n></mtd><mtd><n>2</n></mtd></mtr><mtr><mtd><n>3</n></mtd><mtd><n>4</n></mtd></mtr></tb>` {
		t.Errorf("ToXML() = %q", got)
	}
	if m.Rows() != 2 || m.Columns() != 2 || m.Entry(1, 0).ToString() != "3" || m.Entry(2, 0) != nil {
		t.Error("entry access")
	}
	m.SetInference(true)
	if !m.Special() {
		t.Error("inference rule must be special")
	}
	if got := m.ToString(); got != "inference_rule([1,2],[3,4])" {
		t.Errorf("ToString() = %q", got)
	}
}

func TestGroupXML(t *testing.T) {
	env, _ := newTestEnv()
	code := NewGroupCell(env, GroupTypeCode)
	code.SetEditableContent("x+1;")
	code.AppendOutput(list(NewTextCell(env, "(%o1)", TextStyleLabel), number(env, "2")))
	code.SetAnswer("Is x positive?", "yes;")
	code.SetAutoAnswer(true)

	want := `<cell type="code" auto_answer="yes" question1="Is x positive?" answer1="yes;">` + "\n" +
		"<input>\n" + `<editor type="input"><line>x+1;</line></editor>` + "\n</input>\n" +
		"<output>\n<mth><lbl>(%o1)</lbl><n>2</n></mth></output>\n</cell>"
	if got := code.ToXML(); got != want {
		t.Errorf("code ToXML() =\n%s\nwant\n%s", got, want)
	}
	if got := code.ToString(); got != "x+1;\n(%o1)\t2" {
		t.Errorf("code ToString() = %q", got)
	}

	sub := NewGroupCell(env, GroupTypeSubsubsection)
	sub.SetEditableContent("Intro")
	want = `<cell type="subsection" sectioning_level="4">` + "\n" + `<editor type="subsubsection"><line>Intro</line></editor>` + "\n</cell>"
	if got := sub.ToXML(); got != want {
		t.Errorf("subsubsection ToXML() = %q", got)
	}
	if got := sub.ToTeX(); got != `\subsubsection{Intro}` {
		t.Errorf("subsubsection ToTeX() = %q", got)
	}

	sec := NewGroupCell(env, GroupTypeSection)
	sec.SetEditableContent("Main")
	sec.Hide(true)
	sec.HideTree(sub)
	got := sec.ToXML()
	if !strings.HasPrefix(got, `<cell type="section" hide="true">`) || !strings.Contains(got, "<fold>\n<cell type=\"subsection\"") {
		t.Errorf("folded ToXML() = %q", got)
	}

	pb := NewGroupCell(env, GroupTypePagebreak)
	if got := pb.ToXML(); got != "<cell type=\"pagebreak\">\n</cell>" {
		t.Errorf("page break ToXML() = %q", got)
	}
	if pb.Editor() != nil {
		t.Error("page break has editor")
	}
}

func TestEditorLines(t *testing.T) {
	env, _ := newTestEnv()
	e := NewEditorCell(env, CellTypeText, "a < b\nsecond")
	if got := e.ToXML(); got != `<editor type="text"><line>a &lt; b</line><line>second</line></editor>` {
		t.Fatalf("ToXML() = %q", got)
	}
	e.Recalculate(12)
	one := NewEditorCell(env, CellTypeText, "a < b")
	one.Recalculate(12)
	if e.Height() != 2*one.Height() {
		t.Fatalf("two lines are %d high, one line %d", e.Height(), one.Height())
	}
	if e.Style() != TextStyleText {
		t.Fatalf("style %v", e.Style())
	}
}

func TestImageXML(t *testing.T) {
	env, _ := newTestEnv()
	img := NewImgCell(env, &Picture{Name: "image1.png", GnuplotSource: "image1.gnuplot", GnuplotData: "data1.gnuplot"})
	img.SetDrawRectangle(false)
	img.SetMaxWidth(300)
	want := `<img gnuplotsource="image1.gnuplot" gnuplotdata="data1.gnuplot" rect="false" maxWidth="300">image1.png</img>`
	if got := img.ToXML(); got != want {
		t.Fatalf("ToXML() = %q", got)
	}
	if got := img.ToString(); got != " (Graphics) " {
		t.Fatalf("ToString() = %q", got)
	}

	slide := NewSlideShowCell(env, []*Picture{{Name: "a.png"}, {Name: "b.png"}})
	slide.SetFrameRate(5)
	slide.SetDisplayedIndex(1)
	slide.SetRunning(false)
	slide.SetDisplayedIndex(7)
	want = `<slide fr="5" frame="1" running="false">a.png;b.png</slide>`
	if got := slide.ToXML(); got != want {
		t.Fatalf("ToXML() = %q", got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		size       [2]int
		maxW, maxH float64
		want       [2]int
	}{
		{[2]int{100, 50}, 0, 0, [2]int{100, 50}},
		{[2]int{100, 50}, 50, 0, [2]int{50, 25}},
		{[2]int{100, 50}, 0, 10, [2]int{20, 10}},
		{[2]int{100, 50}, 200, 200, [2]int{100, 50}},
	}
	for _, tt := range tests {
		got := fit(pt(tt.size), tt.maxW, tt.maxH)
		if got != pt(tt.want) {
			t.Errorf("fit(%v, %v, %v) = %v, want %v", tt.size, tt.maxW, tt.maxH, got, tt.want)
		}
	}
}

func pt(a [2]int) image.Point { return image.Pt(a[0], a[1]) }
