package detect

import "strings"

// Coarse category names shared across the pipeline.
const (
	CategoryHuman     = "human"
	CategoryAnimal    = "animal"
	CategoryVehicle   = "vehicle"
	CategoryMachinery = "machinery"
)

// categoryTable maps raw class names to coarse categories. Heavy
// vehicles are listed under machinery and win over the vehicle mapping;
// class names absent from the table keep their own name as category.
//
// The table is immutable and shared read-only across calls.
var categoryTable = map[string]string{
	// humans
	"person": CategoryHuman,

	// animals
	"bird": CategoryAnimal, "cat": CategoryAnimal, "dog": CategoryAnimal,
	"horse": CategoryAnimal, "sheep": CategoryAnimal, "cow": CategoryAnimal,
	"elephant": CategoryAnimal, "bear": CategoryAnimal, "zebra": CategoryAnimal,
	"giraffe": CategoryAnimal, "animal": CategoryAnimal,

	// heavy vehicles double as machinery and take precedence
	"truck": CategoryMachinery, "bus": CategoryMachinery, "train": CategoryMachinery,
	"machinery": CategoryMachinery,

	// remaining transport
	"car": CategoryVehicle, "motorcycle": CategoryVehicle,
	"bicycle": CategoryVehicle, "airplane": CategoryVehicle,
	"boat": CategoryVehicle, "vehicle": CategoryVehicle,
}

// Categorize maps a raw class name to its coarse category. Unknown
// classes keep their own lowercased name.
func Categorize(class string) string {
	class = strings.ToLower(class)
	if cat, ok := categoryTable[class]; ok {
		return cat
	}
	return class
}
