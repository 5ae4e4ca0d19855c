package catalog_test

import (
	"fmt"

	"github.com/cwbudde/algo-specsens/catalog"
)

func ExampleCatalogNumber() {
	id, err := catalog.CatalogNumber(catalog.DefaultDevice, catalog.DefaultManufacturer, "EOS M", catalog.DefaultVersion)
	if err != nil {
		panic(err)
	}
	name, err := catalog.FileName(catalog.DefaultManufacturer, "EOS M")
	if err != nil {
		panic(err)
	}

	fmt.Println(id)
	fmt.Println(name)

	// Output:
	// camera_canon_eos_m_0.1.0
	// canon_eos_m_380_780_5.json
}
