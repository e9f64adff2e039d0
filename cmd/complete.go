package cmd

import (
	"flag"

	"github.com/etnz/store"
	"github.com/etnz/store/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// Product flags predict the names of the catalog in the store folder. At
// completion time flags are not parsed, so the folder comes from the
// environment or the default.
func Completion() *complete.Command {
	products := complete.PredictFunc(func(prefix string) []string {
		return productNames(defaultStoreDir())
	})

	c := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.VisitAll(func(f *flag.Flag) { c.Flags[f.Name] = predictFlag(f, products) })

	for _, g := range Groups() {
		for _, cmd := range g.Commands {
			fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
			cmd.SetFlags(fs)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}}
			fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predictFlag(f, products) })
			c.Sub[cmd.Name()] = sub
		}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		c.Sub["topic"].Args = predict.Set(append(topics, "*"))
	}
	return c
}

func predictFlag(f *flag.Flag, products complete.Predictor) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "n":
		return products
	case "type":
		return predict.Set{string(store.Sale), string(store.Purchase)}
	case "r":
		return predict.Set{"inventory", "sales", "purchases", "all"}
	case "format":
		return predict.Set{"table", "list"}
	case "store-dir":
		return predict.Dirs("*")
	case "auth-db":
		return predict.Files("*.db")
	}
	return predict.Something
}

// productNames returns the names in the catalog of dir, sorted.
func productNames(dir string) []string {
	inv := store.NewRepository(dir, nil).LoadInventory()
	names := make([]string, 0, inv.Len())
	for p := range inv.Products() {
		names = append(names, p.Name)
	}
	return names
}
