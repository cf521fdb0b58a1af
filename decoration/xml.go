package decoration

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LoadXML parses an XML site descriptor. The descriptor root element is
// arbitrary; the custom subtree is located by name.
func LoadXML(r io.Reader) (*Document, error) {
	root, err := parseXML(r)
	if err != nil {
		return nil, fmt.Errorf("error while parsing xml descriptor: %w", err)
	}

	return documentFromRoot(root), nil
}

func parseXML(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)

	var root *Element

	var stack []*Element

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			element := &Element{Name: t.Name.Local}

			for _, attr := range t.Attr {
				if element.Attrs == nil {
					element.Attrs = make(map[string]string)
				}
				element.Attrs[attr.Name.Local] = attr.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = element
			} else {
				parent := stack[len(stack)-1]
				parent.Elements = append(parent.Elements, element)
			}

			stack = append(stack, element)
		case xml.EndElement:
			top := stack[len(stack)-1]
			top.Text = strings.TrimSpace(top.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}

	return root, nil
}
