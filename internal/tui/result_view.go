package tui

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

// maxRenderDepth caps how deep the result tree is drawn. Deeper subtrees
// collapse into truncatedMarker.
const maxRenderDepth = 32

const truncatedMarker = "…"

const resultIndent = "  "

// renderResult draws r as an indented tree: object keys as labels, array
// items as [i], scalars as leaves.
func renderResult(r models.OperationResult) string {
	return models.WalkResult(r, maxRenderDepth, renderResultLeaf, renderResultBranch)
}

func renderResultLeaf(node models.ResultNode) string {
	var value string
	if node.Truncated(maxRenderDepth) {
		value = resultNullStyle.Render(truncatedMarker)
	} else {
		value = renderScalar(node.Value)
	}

	if node.Label == "" {
		return value
	}
	return resultKeyStyle.Render(node.Label+":") + " " + value
}

func renderResultBranch(node models.ResultNode, children []string) string {
	if len(children) == 0 {
		empty := "{}"
		if node.Value.Kind == models.ResultArray {
			empty = "[]"
		}
		if node.Label == "" {
			return resultNullStyle.Render(empty)
		}
		return resultKeyStyle.Render(node.Label+":") + " " + resultNullStyle.Render(empty)
	}

	body := strings.Join(children, "\n")
	if node.Label == "" {
		return body
	}
	return resultKeyStyle.Render(node.Label+":") + "\n" + indent(body, resultIndent)
}

func renderScalar(r models.OperationResult) string {
	switch r.Kind {
	case models.ResultNumber:
		return resultNumberStyle.Render(r.Scalar)
	case models.ResultBool:
		return resultBoolStyle.Render(r.Scalar)
	case models.ResultNull:
		return resultNullStyle.Render("null")
	default:
		return resultStringStyle.Render(r.Scalar)
	}
}

// resultClipboardText returns the indented JSON copied by ctrl+y.
func resultClipboardText(r models.OperationResult) (string, error) {
	raw, err := r.MarshalJSON()
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err = json.Indent(&out, raw, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}
