package reports

import (
	"time"

	"lost-pet-alerts/internal/platform/timelost"
)

// seedEntry es una fila del catálogo inicial. El catálogo guarda la
// antigüedad como etiqueta ("2 días", "1 mes y 3 días"): al sembrar se
// convierte a un LostAt absoluto restando los días parseados.
type seedEntry struct {
	id              string
	name            string
	timeLost        string
	petType         PetType
	zone            string
	characteristics string
	imageURL        string
	latitude        float64
	longitude       float64
}

// augmentIDs son las filas de prueba cercanas a la región por defecto que se
// agregaron después de la siembra original. Si un store ya inicializado no
// tiene ninguna de ellas, se anexan una sola vez (sin tocar el resto).
var augmentIDs = []string{"23", "24", "25", "26"}

var seedCatalog = []seedEntry{
	{
		id: "23", name: "Max", timeLost: "2 días", petType: PetTypeDog,
		zone:            "Cerca de Universidad Privada del Valle, La Paz",
		characteristics: "Perro labrador dorado, muy amigable. Usa collar rojo con placa de identificación.",
		imageURL:        "https://images.unsplash.com/photo-1552053831-71594a27632d?w=400&h=400&fit=crop&crop=face",
		latitude:        -16.5045, longitude: -68.12,
	},
	{
		id: "24", name: "Bella", timeLost: "Hoy", petType: PetTypeDog,
		zone:            "Universidad Privada del Valle, La Paz",
		characteristics: "Perrita pequeña blanca con manchas marrones. Muy juguetona y cariñosa.",
		imageURL:        "https://content.dogagingproject.org/wp-content/uploads/2020/11/helena-lopes-S3TPJCOIRoo-unsplash-scaled.jpg",
		latitude:        -16.5015, longitude: -68.125,
	},
	{
		id: "25", name: "Whiskers", timeLost: "3 días", petType: PetTypeCat,
		zone:            "Zona Universidad, La Paz",
		characteristics: "Gato atigrado gris y negro, ojos verdes. Muy tranquilo y amigable.",
		imageURL:        "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcS6d87zy2l97Gbuz1xheO71Fzw31vhLFurSyg&s",
		latitude:        -16.5055, longitude: -68.118,
	},
	{
		id: "26", name: "Charlie", timeLost: "1 día", petType: PetTypeDog,
		zone:            "Universidad Privada del Valle, La Paz",
		characteristics: "Perro pequeño, color marrón con patas blancas. Muy energético y le gusta correr.",
		imageURL:        "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?w=400&h=400&fit=crop&q=60",
		latitude:        -16.5005, longitude: -68.122,
	},
	{
		id: "1", name: "Michito", timeLost: "1 mes y 3 días", petType: PetTypeCat,
		zone:            "Sopocachi, Av. Arce y Belisario Salinas",
		characteristics: "Gato naranja, con chompa roja. Es malo, no le gustan las personas, es muy asustadizo.",
		imageURL:        "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcS6d87zy2l97Gbuz1xheO71Fzw31vhLFurSyg&s",
		latitude:        -16.504, longitude: -68.123,
	},
	{
		id: "2", name: "Luna", timeLost: "2 semanas", petType: PetTypeDog,
		zone:            "Miraflores, Calle 21 de Calacoto",
		characteristics: "Perrita blanca con manchas negras, muy cariñosa y juguetona. Usa collar azul con cascabel.",
		imageURL:        "https://images.unsplash.com/photo-1552053831-71594a27632d?w=400&h=400&fit=crop&crop=face",
		latitude:        -16.502, longitude: -68.12,
	},
	{
		id: "3", name: "Toby", timeLost: "5 días", petType: PetTypeDog,
		zone:            "San Pedro, Plaza España",
		characteristics: "Perro golden retriever, pelo dorado, muy amigable. Responde al nombre Toby y le gustan las galletas.",
		imageURL:        "https://content.dogagingproject.org/wp-content/uploads/2020/11/helena-lopes-S3TPJCOIRoo-unsplash-scaled.jpg",
		latitude:        -16.505, longitude: -68.125,
	},
	{
		id: "4", name: "Mittens", timeLost: "3 semanas", petType: PetTypeCat,
		zone:            "Centro, Plaza Murillo",
		characteristics: "Gato gris con patas blancas, ojos verdes. Muy tímido pero cariñoso una vez que confía.",
		imageURL:        "https://upload.wikimedia.org/wikipedia/commons/thumb/1/15/Cat_August_2010-4.jpg/1200px-Cat_August_2010-4.jpg",
		latitude:        -16.5, longitude: -68.15,
	},
	{
		id: "5", name: "Bolita", timeLost: "3 semanas", petType: PetTypeCat,
		zone:            "Centro, Plaza Murillo",
		characteristics: "Gato gris con patas blancas, ojos verdes. Muy tímido pero cariñoso una vez que confía.",
		imageURL:        "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSvDjheMimCJ9F7ijyF295zUUA4UCAXgIF4cw&s",
		latitude:        -16.5, longitude: -68.15,
	},
	{
		id: "6", name: "Pelusa", timeLost: "1 semana", petType: PetTypeCat,
		zone:            "Zona Sur, Calacoto",
		characteristics: "Gato blanco con manchas negras, muy peludo. Le gusta dormir en el sol y maúlla mucho.",
		imageURL:        "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?w=400&h=400&fit=crop&q=60",
		latitude:        -16.505, longitude: -68.155,
	},
	{
		id: "7", name: "Naranjito", timeLost: "4 días", petType: PetTypeCat,
		zone:            "Obrajes, Av. 14 de Septiembre",
		characteristics: "Gato naranja pequeño, muy juguetón. Tiene una mancha blanca en el pecho.",
		imageURL:        "https://images.unsplash.com/photo-1574158622682-e40e69881006?w=400&h=400&fit=crop&q=60",
		latitude:        -16.507, longitude: -68.154,
	},
	{
		id: "8", name: "Pepe", timeLost: "2 meses", petType: PetTypeCat,
		zone:            "San Miguel, Calle Linares",
		characteristics: "Gato completamente negro, ojos amarillos. Es muy independiente y le gusta salir de noche.",
		imageURL:        "https://cdn0.uncomo.com/es/posts/6/2/3/como_preparar_la_casa_para_mi_nuevo_gato_21326_600.jpg",
		latitude:        -16.498, longitude: -68.149,
	},
	{
		id: "9", name: "Manchitas", timeLost: "10 días", petType: PetTypeCat,
		zone:            "Irpavi, Calle 1",
		characteristics: "Gata tricolor (blanco, negro y naranja), muy cariñosa. Responde al nombre Manchitas.",
		imageURL:        "https://pxcdn.reduno.com.bo/reduno/012023/1673038537687.webp?cw=400&ch=225&extw=jpg",
		latitude:        -16.508, longitude: -68.156,
	},
	{
		id: "10", name: "Tigre", timeLost: "6 días", petType: PetTypeCat,
		zone:            "Achumani, Av. Ballivián",
		characteristics: "Gato atigrado gris y negro, patrón rayado. Es muy activo y le gusta cazar pájaros.",
		imageURL:        "https://media.ambito.com/p/e8153b7df7239d4fdea8d90675b3114c/adjuntos/239/imagenes/040/296/0040296921/375x211/smart/gatos-maceta-1jpg.jpg",
		latitude:        -16.51, longitude: -68.157,
	},
	{
		id: "11", name: "Blanquito", timeLost: "3 días", petType: PetTypeCat,
		zone:            "Cota Cota, Calle 11",
		characteristics: "Gato blanco con ojos azules, sordo. Muy tranquilo y amigable, le gusta estar en casa.",
		imageURL:        "https://images.unsplash.com/photo-1543852786-1cf6624b9987?w=400&h=400&fit=crop&q=60",
		latitude:        -16.512, longitude: -68.158,
	},
	{
		id: "12", name: "Don gato", timeLost: "2 semanas", petType: PetTypeCat,
		zone:            "Villa Fátima, Av. Naciones Unidas",
		characteristics: "Gato gris claro, pelo corto. Tiene una cicatriz pequeña en la oreja izquierda.",
		imageURL:        "https://lapatria.bo/wp-content/uploads/2020/09/FOTO-1-GATO.png",
		latitude:        -16.495, longitude: -68.145,
	},
	{
		id: "13", name: "Chiquito", timeLost: "8 días", petType: PetTypeCat,
		zone:            "La Paz Centro, Calle Comercio",
		characteristics: "Gato pequeño, color crema con manchas marrones. Es joven, aproximadamente 1 año.",
		imageURL:        "https://images.unsplash.com/photo-1518791841217-8f162f1e1131?w=400&h=400&fit=crop&q=60",
		latitude:        -16.5, longitude: -68.15,
	},
	{
		id: "14", name: "Bigotes", timeLost: "5 días", petType: PetTypeCat,
		zone:            "El Alto, Zona 16 de Julio",
		characteristics: "Gato negro con bigotes largos y blancos, muy característicos. Es curioso y amigable.",
		imageURL:        "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQZNA-6jR1t-ESYon5NtRZf6L3Qw7IUouUMdw&s",
		latitude:        -16.48, longitude: -68.14,
	},
	{
		id: "15", name: "Patitas", timeLost: "1 mes", petType: PetTypeCat,
		zone:            "Zona Norte, Av. Juan Pablo II",
		characteristics: "Gata siamesa, color crema con puntos oscuros en orejas, patas y cola. Muy vocal.",
		imageURL:        "https://images.unsplash.com/photo-1571566882372-1598d88abd90?w=400&h=400&fit=crop&q=60",
		latitude:        -16.493, longitude: -68.146,
	},
	{
		id: "16", name: "Max", timeLost: "1 semana", petType: PetTypeDog,
		zone:            "Zona Sur, Calacoto",
		characteristics: "Perro labrador negro, muy juguetón. Le encanta jugar con pelotas y es muy amigable con los niños.",
		imageURL:        "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcS_yp4siNnAGNGCMXjFrcVz5vjrg4wSXkey-g&s",
		latitude:        -16.505, longitude: -68.155,
	},
	{
		id: "17", name: "Rocky", timeLost: "3 días", petType: PetTypeDog,
		zone:            "Obrajes, Av. 14 de Septiembre",
		characteristics: "Perro pequeño, color marrón claro. Tiene una mancha blanca en el pecho y es muy activo.",
		imageURL:        "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?w=400&h=400&fit=crop&q=60",
		latitude:        -16.507, longitude: -68.154,
	},
	{
		id: "18", name: "Bella", timeLost: "2 semanas", petType: PetTypeDog,
		zone:            "San Miguel, Calle Linares",
		characteristics: "Perrita beagle, tricolor (blanco, negro y marrón). Muy curiosa y le gusta seguir olores.",
		imageURL:        "https://images.unsplash.com/photo-1551717743-49959800b1f6?w=400&h=400&fit=crop&q=60",
		latitude:        -16.498, longitude: -68.149,
	},
	{
		id: "19", name: "Choco", timeLost: "5 días", petType: PetTypeDog,
		zone:            "Irpavi, Calle 1",
		characteristics: "Perro chocolate, pelo corto y brillante. Muy cariñoso y le gusta estar cerca de las personas.",
		imageURL:        "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=400&h=400&fit=crop&q=60",
		latitude:        -16.508, longitude: -68.156,
	},
	{
		id: "20", name: "Lucky", timeLost: "10 días", petType: PetTypeDog,
		zone:            "Achumani, Av. Ballivián",
		characteristics: "Perro mestizo, color crema con manchas marrones. Tiene una pata delantera con una cicatriz pequeña.",
		imageURL:        "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=400&h=400&fit=crop&q=60",
		latitude:        -16.51, longitude: -68.157,
	},
	{
		id: "21", name: "Rex", timeLost: "4 días", petType: PetTypeDog,
		zone:            "Cota Cota, Calle 11",
		characteristics: "Perro pastor alemán, color negro y marrón. Muy inteligente y leal, responde bien a comandos.",
		imageURL:        "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRWAeQh3LdidSVcYwyfS7CikxDkGekmKwV-ew&s",
		latitude:        -16.512, longitude: -68.158,
	},
	{
		id: "22", name: "Daisy", timeLost: "6 días", petType: PetTypeDog,
		zone:            "Villa Fátima, Av. Naciones Unidas",
		characteristics: "Perrita pequeña, blanca con manchas grises. Muy dulce y tranquila, le gusta dormir mucho.",
		imageURL:        "https://images.unsplash.com/photo-1517849845537-4d257902454a?w=400&h=400&fit=crop&q=60",
		latitude:        -16.495, longitude: -68.145,
	},
}

func (e seedEntry) toReport(now time.Time) Report {
	days := timelost.ParseToDays(e.timeLost)
	if days == timelost.UnknownDays {
		days = 0
	}
	lat, lng := e.latitude, e.longitude

	return Report{
		ID:              e.id,
		PetType:         e.petType,
		Name:            e.name,
		Breed:           "",
		Characteristics: e.characteristics,
		Address:         e.zone,
		Latitude:        &lat,
		Longitude:       &lng,
		LostAt:          now.AddDate(0, 0, -int(days)),
		ImageURIs:       []string{e.imageURL},
		CreatedAt:       now,
	}
}

func seedReports(now time.Time, ids []string) []Report {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	out := make([]Report, 0, len(ids))
	for _, e := range seedCatalog {
		if want[e.id] {
			out = append(out, e.toReport(now))
		}
	}
	return out
}

func allSeedIDs() []string {
	ids := make([]string, 0, len(seedCatalog))
	for _, e := range seedCatalog {
		ids = append(ids, e.id)
	}
	return ids
}
