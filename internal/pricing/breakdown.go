package pricing

// Entry is one line of an itemized price breakdown.
type Entry struct {
	Label  string `json:"label"`
	Amount Money  `json:"amount"`
}

// Breakdown itemizes a composed chain: the base item first, then every
// layer with a strictly positive increment in original application order.
// Cost-free cosmetic layers still show up in Describe() but carry no entry.
type Breakdown struct {
	Items []Entry `json:"items"`
	Total Money   `json:"total"`
}

// Itemize reconstructs the breakdown of a composed chain. It walks from the
// outermost layer down to the base item without mutating anything, so calling
// it repeatedly on the same chain yields identical results.
func Itemize(node Node) Breakdown {
	if composed, ok := node.(Composed); ok {
		node = composed.Node
	}
	var layers []Entry
	current := node
	for {
		layer, ok := current.(Layer)
		if !ok {
			break
		}
		if layer.Cost() > 0 {
			layers = append(layers, Entry{Label: layer.Label(), Amount: layer.Cost()})
		}
		current = layer.Inner()
	}

	items := make([]Entry, 0, len(layers)+1)
	items = append(items, Entry{Label: current.Describe(), Amount: current.ResolvedPrice()})
	// The walk collected layers outermost-first; reverse back to application order.
	for i := len(layers) - 1; i >= 0; i-- {
		items = append(items, layers[i])
	}
	return Breakdown{Items: items, Total: node.ResolvedPrice()}
}

// Breakdown reconstructs the itemized breakdown of this composed chain.
func (c Composed) Breakdown() Breakdown { return Itemize(c.Node) }
