package watchface

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func parseString(t *testing.T, desc string, res FrameResolver, opts ...Option) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(desc), res, opts...)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestParseDocumentFatal(t *testing.T) {
	tests := []struct {
		name  string
		desc  string
		kind  error
		field string
	}{
		{"missing width", `{"height":320,"items":[]}`, ErrInvalidSize, "width"},
		{"missing height", `{"width":320,"items":[]}`, ErrInvalidSize, "height"},
		{"string width", `{"width":"320","height":320}`, ErrInvalidSize, "width"},
		{"fractional height", `{"width":320,"height":1.5}`, ErrInvalidSize, "height"},
		{"zero width", `{"width":0,"height":320}`, ErrInvalidSize, "width"},
		{"negative height", `{"width":320,"height":-1}`, ErrInvalidSize, "height"},
		{"null width", `{"width":null,"height":320}`, ErrInvalidSize, "width"},
		{"not json", `<xml/>`, ErrInvalidDescriptor, ""},
		{"array", `[1,2]`, ErrInvalidDescriptor, ""},
		{"null", `null`, ErrInvalidDescriptor, ""},
		{"empty", ``, ErrInvalidDescriptor, ""},
		{"items not array", `{"width":1,"height":1,"items":{}}`, ErrInvalidDescriptor, "items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.desc), nopResolver{})
			if doc != nil {
				t.Errorf("Parse() returned a document, want nil")
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.kind)
			}
			var de *DocumentError
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not *DocumentError", err)
			}
			if de.Field != tt.field {
				t.Errorf("Field = %q, want %q", de.Field, tt.field)
			}
		})
	}
}

func TestParseUnreadableStream(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := Parse(iotest.ErrReader(boom), nopResolver{})
	if !errors.Is(err, ErrInvalidDescriptor) || !errors.Is(err, boom) {
		t.Errorf("Parse() error = %v, want ErrInvalidDescriptor wrapping the read error", err)
	}
}

func TestParseMissingItemsIsEmpty(t *testing.T) {
	doc := parseString(t, `{"width":454,"height":454}`, nopResolver{}, WithSource("face.zip"))
	if doc.Width() != 454 || doc.Height() != 454 {
		t.Errorf("size = %dx%d, want 454x454", doc.Width(), doc.Height())
	}
	if len(doc.Items()) != 0 || len(doc.TapActions()) != 0 || len(doc.Skipped()) != 0 {
		t.Error("expected an empty document")
	}
	if doc.Source() != "face.zip" {
		t.Errorf("Source() = %q, want face.zip", doc.Source())
	}
}

func TestParseAllVariants(t *testing.T) {
	desc := `{"width":320,"height":320,"items":[
		{"type":0,"center_x":160,"center_y":160,"frames":["bg"]},
		{"type":6,"center_x":160,"center_y":100,"frames":["d"]},
		{"type":10,"center_x":80,"center_y":240,"frames":["d"]},
		{"type":19,"center_x":240,"center_y":240,"frames":["d"]},
		{"type":99,"center_x":160,"center_y":160,"rotatable_type":3,"frames":["hand"]},
		{"type":100,"center_x":40,"center_y":40,"frames":[],"packageName":"p","className":"c","range":30}
	]}`
	res := mapResolver{
		"bg":   solid(320, 320, color.NRGBA{A: 255}),
		"d":    solid(10, 10, color.NRGBA{A: 255}),
		"hand": solid(4, 100, color.NRGBA{A: 255}),
	}
	doc := parseString(t, desc, res)

	items := doc.Items()
	want := []ItemType{TypeStatic, TypeHourMinute, TypeWeather, TypeMoonPhase, TypeRotatable, TypeTapAction}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d (skipped: %v)", len(items), len(want), doc.Skipped())
	}
	for i, it := range items {
		if it.Type() != want[i] {
			t.Errorf("item %d Type() = %v, want %v", i, it.Type(), want[i])
		}
	}
	if _, ok := items[1].(*DigitItem); !ok {
		t.Errorf("item 1 is %T, want *DigitItem", items[1])
	}
	rot, ok := items[4].(*RotatableItem)
	if !ok {
		t.Fatalf("item 4 is %T, want *RotatableItem", items[4])
	}
	if rot.Kind() != RotateSecond || rot.Center() != image.Pt(160, 160) {
		t.Errorf("rotatable = %v at %v", rot.Kind(), rot.Center())
	}
	if taps := doc.TapActions(); len(taps) != 1 || taps[0] != items[5] {
		t.Errorf("TapActions() = %v, want the tap item", taps)
	}
}

func TestParseRotatableDefaults(t *testing.T) {
	desc := `{"width":320,"height":320,"items":[
		{"type":99,"center_x":1,"center_y":2,"rotatable_type":1,"frames":[]},
		{"type":99,"center_x":1,"center_y":2,"rotatable_type":7,"start_angle":-90.5,"max_angle":180,"direction":2,"frames":[]},
		{"type":99,"center_x":1,"center_y":2,"rotatable_type":6,"start_angle":null,"direction":7,"frames":[]}
	]}`
	doc := parseString(t, desc, nopResolver{})
	items := doc.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3 (skipped: %v)", len(items), doc.Skipped())
	}

	tests := []struct {
		kind RotatableKind
		want Rotation
	}{
		{RotateHour, Rotation{Start: 0, Max: 360, Direction: Clockwise}},
		{RotateHour24, Rotation{Start: -90.5, Max: 180, Direction: CounterClockwise}},
		{RotateBattery, Rotation{Start: 0, Max: 360, Direction: Clockwise}},
	}
	for i, tt := range tests {
		rot := items[i].(*RotatableItem)
		if rot.Kind() != tt.kind {
			t.Errorf("item %d Kind() = %v, want %v", i, rot.Kind(), tt.kind)
		}
		if rot.Rotation() != tt.want {
			t.Errorf("item %d Rotation() = %+v, want %+v", i, rot.Rotation(), tt.want)
		}
	}
}

func TestParseItemErrors(t *testing.T) {
	tests := []struct {
		name   string
		record string
		kind   error
		field  string
	}{
		{"missing type", `{"center_x":1,"center_y":1}`, ErrMalformedGeometry, "type"},
		{"string center_x", `{"type":0,"center_x":"1","center_y":1}`, ErrMalformedGeometry, "center_x"},
		{"missing center_y", `{"type":0,"center_x":1}`, ErrMalformedGeometry, "center_y"},
		{"not an object", `42`, ErrMalformedGeometry, ""},
		{"recognized unsupported", `{"type":11,"center_x":1,"center_y":1}`, ErrUnsupportedType, "type"},
		{"unknown type", `{"type":777,"center_x":1,"center_y":1}`, ErrUnsupportedType, "type"},
		{"missing rotatable_type", `{"type":99,"center_x":1,"center_y":1}`, ErrMissingRotatableType, "rotatable_type"},
		{"unknown rotatable_type", `{"type":99,"center_x":1,"center_y":1,"rotatable_type":16}`, ErrUnsupportedRotatableType, "rotatable_type"},
		{"string rotatable_type", `{"type":99,"center_x":1,"center_y":1,"rotatable_type":"hour"}`, ErrUnsupportedRotatableType, "rotatable_type"},
		{"bad start_angle", `{"type":99,"center_x":1,"center_y":1,"rotatable_type":1,"start_angle":"x"}`, ErrMalformedGeometry, "start_angle"},
		{"bad direction", `{"type":99,"center_x":1,"center_y":1,"rotatable_type":1,"direction":1.5}`, ErrMalformedGeometry, "direction"},
		{"tap missing range", `{"type":100,"center_x":1,"center_y":1,"packageName":"p","className":"c"}`, ErrMalformedTapAction, "range"},
		{"tap missing package", `{"type":100,"center_x":1,"center_y":1,"className":"c","range":5}`, ErrMalformedTapAction, "packageName"},
		{"tap numeric class", `{"type":100,"center_x":1,"center_y":1,"packageName":"p","className":3,"range":5}`, ErrMalformedTapAction, "className"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := `{"width":10,"height":10,"items":[
				{"type":0,"center_x":1,"center_y":1,"frames":[]},
				` + tt.record + `,
				{"type":16,"center_x":2,"center_y":2,"frames":[]}
			]}`
			var handled []*ItemError
			doc := parseString(t, desc, nopResolver{}, WithSkipHandler(func(e *ItemError) {
				handled = append(handled, e)
			}))

			items := doc.Items()
			if len(items) != 2 || items[0].Type() != TypeStatic || items[1].Type() != TypeYear {
				t.Fatalf("items = %v, want the two valid neighbours", items)
			}
			skipped := doc.Skipped()
			if len(skipped) != 1 {
				t.Fatalf("Skipped() = %v, want one error", skipped)
			}
			e := skipped[0]
			if !errors.Is(e, tt.kind) {
				t.Errorf("error = %v, want %v", e, tt.kind)
			}
			if e.Index != 1 || e.Field != tt.field {
				t.Errorf("error at index %d field %q, want index 1 field %q", e.Index, e.Field, tt.field)
			}
			if len(handled) != 1 || handled[0] != e {
				t.Errorf("skip handler got %v", handled)
			}
		})
	}
}

func TestParseTapActionMissingRangeDropped(t *testing.T) {
	desc := `{"width":10,"height":10,"items":[
		{"type":100,"center_x":1,"center_y":1,"frames":[],"packageName":"p","className":"c"},
		{"type":100,"center_x":5,"center_y":5,"frames":[],"packageName":"p2","className":"c2","range":3}
	]}`
	doc := parseString(t, desc, nopResolver{})
	taps := doc.TapActions()
	if len(taps) != 1 || taps[0].PackageName() != "p2" {
		t.Fatalf("TapActions() = %v, want only p2", taps)
	}
	if len(doc.Items()) != 1 {
		t.Errorf("Items() has %d entries, want 1", len(doc.Items()))
	}
}

func TestParseUnsupportedTypeKeepsOthers(t *testing.T) {
	desc := `{"width":10,"height":10,"items":[
		{"type":7,"center_x":1,"center_y":1,"frames":[]},
		{"type":13,"center_x":1,"center_y":1,"frames":[]},
		{"type":8,"center_x":1,"center_y":1,"frames":[]}
	]}`
	doc := parseString(t, desc, nopResolver{})
	items := doc.Items()
	if len(items) != 2 || items[0].Type() != TypeHour || items[1].Type() != TypeMinute {
		t.Errorf("items = %v, want Hour and Minute", items)
	}
	skipped := doc.Skipped()
	if len(skipped) != 1 || !errors.Is(skipped[0], ErrUnsupportedType) || skipped[0].Type != TypeHeartRate {
		t.Errorf("Skipped() = %v, want one HeartRate ErrUnsupportedType", skipped)
	}
}

func TestParseFramesPartialResolution(t *testing.T) {
	good := solid(6, 6, color.NRGBA{G: 255, A: 255})
	desc := `{"width":10,"height":10,"items":[
		{"type":0,"center_x":1,"center_y":1,"frames":["missing.png","good.png"]},
		{"type":0,"center_x":1,"center_y":1,"frames":"not-a-list"},
		{"type":0,"center_x":1,"center_y":1,"frames":[3,"good.png",null]}
	]}`
	doc := parseString(t, desc, mapResolver{"good.png": good})
	items := doc.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if f := items[0].Frames(); len(f) != 1 || f[0] != image.Image(good) {
		t.Errorf("item 0 frames = %v, want [good]", f)
	}
	if f := items[1].Frames(); len(f) != 0 {
		t.Errorf("item 1 frames = %v, want none", f)
	}
	if f := items[2].Frames(); len(f) != 1 {
		t.Errorf("item 2 frames = %v, want [good]", f)
	}
}

// Frames are resolved before the record is validated, so a record that is
// later skipped still asks for its frames.
func TestParseResolvesFramesBeforeValidation(t *testing.T) {
	var asked []string
	res := resolverFunc(func(names []string) []image.Image {
		asked = append(asked, names...)
		return nil
	})
	parseString(t, `{"width":1,"height":1,"items":[{"type":"x","frames":["a.png"]}]}`, res)
	if len(asked) != 1 || asked[0] != "a.png" {
		t.Errorf("resolver asked for %v, want [a.png]", asked)
	}
}

type resolverFunc func([]string) []image.Image

func (f resolverFunc) ResolveFrames(names []string) []image.Image { return f(names) }

func TestParseDeterministic(t *testing.T) {
	frames := map[string]image.Image{
		"bg.png":   solid(20, 20, color.NRGBA{B: 255, A: 255}),
		"hand.png": solid(2, 8, color.NRGBA{R: 255, A: 255}),
	}
	desc := `{"width":20,"height":20,"items":[
		{"type":0,"center_x":10,"center_y":10,"frames":["bg.png"]},
		{"type":99,"center_x":10,"center_y":10,"rotatable_type":2,"start_angle":5,"frames":["hand.png","nope.png"]},
		{"type":25,"center_x":1,"center_y":1,"frames":[]},
		{"type":100,"center_x":3,"center_y":4,"frames":["bg.png"],"packageName":"p","className":"c","range":9}
	]}`
	pkg := testPackage(t, desc, frames)

	first, err := Load(pkg)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	second, err := Load(pkg, WithConcurrency(4))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	a, b := first.Items(), second.Items()
	if len(a) != len(b) || len(a) != 3 {
		t.Fatalf("item counts %d and %d, want 3", len(a), len(b))
	}
	s := at(1, 2, 3)
	for i := range a {
		if a[i].Type() != b[i].Type() || a[i].Center() != b[i].Center() || len(a[i].Frames()) != len(b[i].Frames()) {
			t.Errorf("item %d differs: %v/%v", i, a[i].Type(), b[i].Type())
		}
		sa, sb := a[i].Sprites(s), b[i].Sprites(s)
		if len(sa) != len(sb) {
			t.Errorf("item %d sprite counts differ", i)
			continue
		}
		for j := range sa {
			if sa[j].X != sb[j].X || sa[j].Y != sb[j].Y || sa[j].Angle != sb[j].Angle {
				t.Errorf("item %d sprite %d differs: %+v vs %+v", i, j, sa[j], sb[j])
			}
		}
	}
	if ra, rb := a[1].(*RotatableItem).Rotation(), b[1].(*RotatableItem).Rotation(); ra != rb {
		t.Errorf("rotations differ: %+v vs %+v", ra, rb)
	}
	if first.Source() != pkg.Source() {
		t.Errorf("Source() = %q, want %q", first.Source(), pkg.Source())
	}
}

func TestParseConcurrentMatchesSequential(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"width":10,"height":10,"items":[`)
	for i := range 200 {
		if i > 0 {
			sb.WriteString(",")
		}
		switch i % 4 {
		case 0:
			sb.WriteString(`{"type":0,"center_x":1,"center_y":1,"frames":[]}`)
		case 1:
			sb.WriteString(`{"type":12,"center_x":1,"center_y":1,"frames":[]}`)
		case 2:
			sb.WriteString(`{"type":99,"center_x":1,"center_y":1,"rotatable_type":3,"frames":[]}`)
		default:
			sb.WriteString(`{"type":100,"center_x":1,"center_y":1,"frames":[],"packageName":"p","className":"c","range":1}`)
		}
	}
	sb.WriteString(`]}`)
	desc := sb.String()

	seq := parseString(t, desc, nopResolver{})
	par := parseString(t, desc, nopResolver{}, WithConcurrency(8))

	si, pi := seq.Items(), par.Items()
	if len(si) != 150 || len(pi) != 150 {
		t.Fatalf("item counts %d/%d, want 150", len(si), len(pi))
	}
	for i := range si {
		if si[i].Type() != pi[i].Type() {
			t.Fatalf("item %d: %v vs %v", i, si[i].Type(), pi[i].Type())
		}
	}
	ss, ps := seq.Skipped(), par.Skipped()
	if len(ss) != 50 || len(ps) != 50 {
		t.Fatalf("skipped counts %d/%d, want 50", len(ss), len(ps))
	}
	for i := range ss {
		if ss[i].Index != ps[i].Index {
			t.Fatalf("skip %d: index %d vs %d", i, ss[i].Index, ps[i].Index)
		}
	}
	if len(par.TapActions()) != 50 {
		t.Errorf("TapActions() = %d, want 50", len(par.TapActions()))
	}
}

func TestParseContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	desc := `{"width":1,"height":1,"items":[{"type":0,"center_x":0,"center_y":0}]}`
	for _, n := range []int{1, 4} {
		doc, err := ParseContext(ctx, strings.NewReader(desc), nopResolver{}, WithConcurrency(n))
		if doc != nil || !errors.Is(err, context.Canceled) {
			t.Errorf("concurrency %d: ParseContext() = %v, %v; want nil, context.Canceled", n, doc, err)
		}
	}
}

func TestLoadDescriptorError(t *testing.T) {
	_, err := Load(brokenArchive{})
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("Load() error = %v, want ErrInvalidDescriptor", err)
	}
}

type brokenArchive struct{}

func (brokenArchive) Descriptor() (io.ReadCloser, error) { return nil, errors.New("no descriptor") }
func (brokenArchive) Open(string) (io.ReadCloser, error) { return nil, errors.New("no entries") }
func (brokenArchive) Source() string                     { return "broken" }

func TestItemErrorMessage(t *testing.T) {
	e := &ItemError{Index: 3, Type: TypeTapAction, Field: "range", Kind: ErrMalformedTapAction, Err: errMissingField}
	want := "watchface: malformed tap action (item 3, type TapAction): range: missing field"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
	e = &ItemError{Index: 0, Type: -1, Field: "type", Kind: ErrMalformedGeometry}
	if got := e.Error(); got != "watchface: malformed item geometry (item 0): type" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(e, ErrMalformedGeometry) || errors.Is(e, ErrUnsupportedType) {
		t.Error("errors.Is does not match the item error kind")
	}
}

func TestItemTypeNames(t *testing.T) {
	tests := []struct {
		typ       ItemType
		name      string
		known     bool
		supported bool
	}{
		{TypeStatic, "Static", true, true},
		{TypeRotatable, "Rotatable", true, true},
		{TypeCharging, "Charging", true, false},
		{TypeYearMonthDay2, "YearMonthDay2", true, false},
		{ItemType(55), "ItemType(55)", false, false},
	}
	for _, tt := range tests {
		if tt.typ.String() != tt.name || tt.typ.Known() != tt.known || tt.typ.Supported() != tt.supported {
			t.Errorf("%d: got (%s, %v, %v), want (%s, %v, %v)", int(tt.typ),
				tt.typ.String(), tt.typ.Known(), tt.typ.Supported(), tt.name, tt.known, tt.supported)
		}
	}
	if RotatableKind(16).Valid() || RotatableKind(16).String() != "RotatableKind(16)" {
		t.Error("RotatableKind(16) should be invalid")
	}
	if CounterClockwise.String() != "CounterClockwise" || Clockwise.String() != "Clockwise" {
		t.Error("Direction names")
	}
}
