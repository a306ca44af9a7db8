package vehicle

// Cars lists the selectable car models in selection order.
var Cars = [...]string{
	"ansx", // Acura NSX
	"audi", // Audi Quattro
	"vett", // Corvette ZR1
	"fgto", // Ferrari GTO
	"jagu", // Jaguar XJR9
	"coun", // Lamborghini Countach
	"lm02", // Lamborghini LM002
	"lanc", // Lancia Delta
	"p962", // Porsche 962
	"pc04", // Porsche Carrera 4
	"pmin", // Porsche March Indy
}

// DefaultCar is the car selected at startup.
const DefaultCar = 4

// CarName returns the car for a selection index, wrapping in both
// directions.
func CarName(index int) string {
	n := len(Cars)
	return Cars[((index%n)+n)%n]
}
