package actions

var registry = map[string]ActionHandler{
	"record_single_answer": &RecordSingleAnswerHandler{},
	"toggle_multi_answer":  &ToggleMultiAnswerHandler{},
	"next":                 &NextHandler{},
	"back":                 &BackHandler{},
	"reset":                &ResetHandler{},
}

func Get(name string) (ActionHandler, bool) {
	h, ok := registry[name]
	return h, ok
}
