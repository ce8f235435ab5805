package present

// View is one of the selectable timer layouts.
type View struct {
	ID   string
	Name string
}

const DefaultViewID = "1"

// Views lists the layouts in selector order.
var Views = []View{
	{ID: "1", Name: "Ring"},
	{ID: "2", Name: "Bar"},
	{ID: "3", Name: "Digits"},
}

// ResolveView returns the view with id, or the default view for unknown ids.
func ResolveView(id string) View {
	for _, view := range Views {
		if view.ID == id {
			return view
		}
	}
	return Views[0]
}

// ViewByName looks a view up by its display name.
func ViewByName(name string) (View, bool) {
	for _, view := range Views {
		if view.Name == name {
			return view, true
		}
	}
	return View{}, false
}

// NextView cycles to the view after id.
func NextView(id string) View {
	for index, view := range Views {
		if view.ID == id {
			return Views[(index+1)%len(Views)]
		}
	}
	return Views[0]
}

// ViewNames returns the display names in selector order.
func ViewNames() []string {
	names := make([]string, 0, len(Views))
	for _, view := range Views {
		names = append(names, view.Name)
	}
	return names
}
