package provider

import (
	"strings"
	"testing"

	"github.com/sharpgen/sharpgen/ir"
)

const sampleDoc = `{
  "classes": [
    {
      "name": "Page",
      "extends": "EventEmitter",
      "comment": "A single tab.\nMore detail.",
      "members": [
        {
          "kind": "method",
          "name": "title",
          "async": true,
          "type": {"name": "string"}
        },
        {
          "kind": "method",
          "name": "waitForLoadState",
          "async": true,
          "args": [
            {
              "name": "state",
              "type": {"union": [{"name": "\"load\""}, {"name": "\"domcontentloaded\""}]}
            }
          ]
        },
        {
          "kind": "property",
          "name": "viewport",
          "required": true,
          "type": {
            "properties": [
              {"name": "width", "required": true, "type": {"name": "number"}},
              {"name": "height", "required": true, "type": {"name": "number"}}
            ]
          }
        },
        {
          "kind": "event",
          "name": "request",
          "type": {"name": "Request"}
        }
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	classes, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(classes))
	}

	page := classes[0]
	if page.Name != "Page" || page.Extends != "EventEmitter" {
		t.Errorf("class = %q extends %q", page.Name, page.Extends)
	}
	if page.Documentation.Summary != "A single tab." {
		t.Errorf("summary = %q", page.Documentation.Summary)
	}
	if len(page.Members) != 4 {
		t.Fatalf("got %d members, want 4", len(page.Members))
	}

	title := page.Members[0]
	if title.Kind != ir.MethodMember || !title.Async {
		t.Errorf("title = kind %v async %v", title.Kind, title.Async)
	}
	if title.Type.Expression() != "string" {
		t.Errorf("title type = %q", title.Type.Expression())
	}

	wait := page.Members[1]
	if len(wait.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(wait.Args))
	}
	state := wait.Args[0]
	if state.Kind != ir.PropertyMember {
		t.Errorf("arg kind = %v, want property", state.Kind)
	}
	u, isUnion := state.Type.(*ir.UnionNode)
	if !isUnion {
		t.Fatalf("state type = %T, want union", state.Type)
	}
	// An anonymous union inherits the enclosing member's name.
	if u.Name != "state" {
		t.Errorf("union name = %q, want %q", u.Name, "state")
	}
	if u.Expression() != `"load"|"domcontentloaded"` {
		t.Errorf("union expression = %q", u.Expression())
	}

	viewport := page.Members[2]
	obj, isObj := viewport.Type.(*ir.ObjectNode)
	if !isObj {
		t.Fatalf("viewport type = %T, want object", viewport.Type)
	}
	if len(obj.Properties) != 2 || obj.Properties[0].Name != "width" {
		t.Errorf("viewport properties = %v", obj.Properties)
	}

	request := page.Members[3]
	if request.Kind != ir.EventMember {
		t.Errorf("request kind = %v, want event", request.Kind)
	}
	if _, isNamed := request.Type.(*ir.NamedNode); !isNamed {
		t.Errorf("request type = %T, want named", request.Type)
	}
}

func TestParseTypeShapes(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"array", `{"name": "Array", "templates": [{"name": "string"}]}`, "Array<string>"},
		{"map", `{"name": "Map", "templates": [{"name": "string"}, {"name": "number"}]}`, "Map<string, number>"},
		{"generic", `{"name": "Object", "templates": [{"name": "string"}, {"name": "string"}]}`, "Object<string, string>"},
		{"bare object", `{"name": "Object"}`, "Object"},
		{"function", `{"name": "function", "args": [{"name": "string"}], "returnType": {"name": "boolean"}}`, "function(string): boolean"},
		{"named", `{"name": "ElementHandle"}`, "ElementHandle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"classes": [{"name": "C", "members": [{"kind": "property", "name": "p", "type": ` + tt.json + `}]}]}`
			classes, err := Parse(strings.NewReader(doc))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			got := classes[0].Members[0].Type.Expression()
			if got != tt.want {
				t.Errorf("type expression = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBareObjectIsGeneric(t *testing.T) {
	doc := `{"classes": [{"name": "C", "members": [{"kind": "property", "name": "p", "type": {"name": "Object"}}]}]}`
	classes, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if _, isGeneric := classes[0].Members[0].Type.(*ir.GenericNode); !isGeneric {
		t.Errorf("bare Object = %T, want generic", classes[0].Members[0].Type)
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty classes", `{"classes": []}`},
		{"missing class name", `{"classes": [{"members": []}]}`},
		{"unknown field", `{"classes": [{"name": "C", "members": []}], "extra": true}`},
		{"bad member kind", `{"classes": [{"name": "C", "members": [{"kind": "field", "name": "x"}]}]}`},
		{"missing member kind", `{"classes": [{"name": "C", "members": [{"name": "x"}]}]}`},
		{"not json", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.json)); err == nil {
				t.Errorf("Parse() accepted invalid document")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.json"); err == nil {
		t.Fatal("expected error")
	}
}
