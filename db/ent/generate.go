package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/meridian-ml/data-curator/gen/ent",
			Schema:  "github.com/meridian-ml/data-curator/db/ent/schema",
		},
		// repository upserts rely on ON CONFLICT support
		entc.FeatureNames("sql/upsert"),
	)
	if err != nil {
		log.Fatal(err)
	}
}
