package svgdoc

import (
	"sort"
	"strings"
)

func (n *Node) Style(name string) string {
	if n.style == nil {
		n.style = map[string]string{}
		n.styleNameOrder = map[string]int{}
		index := 0
		for _, pair := range strings.Split(n.Styles, ";") {
			kv := strings.Split(pair, ":")
			if len(kv) == 2 {
				n.style[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
				index++
				n.styleNameOrder[strings.TrimSpace(kv[0])] = index
			}
		}
	}
	return n.style[name]
}

func (n *Node) SetStyle(name string, value string) {
	if n.style == nil {
		// Call for side-effect of populating the style map
		n.Style(name)
	}
	n.style[name] = value
}

// FillColor returns the effective fill, preferring the fill attribute and
// falling back to the style declaration.
func (n *Node) FillColor() string {
	if n.Fill != "" {
		return n.Fill
	}
	return n.Style("fill")
}

func (n *Node) serializeStyle() {
	if n.style == nil {
		return
	}
	type nameValue struct {
		name  string
		value string
	}
	var styles []nameValue
	for name, value := range n.style {
		styles = append(styles, nameValue{name: name, value: value})
	}
	sort.Slice(styles, func(i, j int) bool {
		a := styles[i].name
		b := styles[j].name
		ao := n.styleNameOrder[a]
		bo := n.styleNameOrder[b]
		if ao == 0 || bo == 0 {
			return a < b
		}
		return ao < bo
	})
	var styleStrs []string
	for _, style := range styles {
		styleStrs = append(styleStrs, style.name+":"+style.value)
	}
	n.Styles = strings.Join(styleStrs, ";")
}
