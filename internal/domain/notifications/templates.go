package notifications

import "fmt"

// Templates de display del feed. La Description propia de la notificación
// (si existe) gana sobre el template; el título siempre se deriva.
// PetType vacío se trata como gato, igual que en la app original.

func petTypeText(petType string) string {
	if petType == "cat" || petType == "" {
		return "gatito"
	}
	return "perrito"
}

func petTypeTextCapitalized(petType string) string {
	if petType == "cat" || petType == "" {
		return "Gatito"
	}
	return "Perrito"
}

func locationOr(n Notification) string {
	if n.Location != "" {
		return n.Location
	}
	return "una ubicación"
}

func TitleFor(n Notification) string {
	switch n.Type {
	case TypeLostPetRegistered:
		return fmt.Sprintf("Se registró la pérdida de %s.", n.PetName)
	case TypePetSeen:
		return fmt.Sprintf("Vieron a tu %s %s en %s", petTypeText(n.PetType), n.PetName, locationOr(n))
	case TypePetFound:
		return fmt.Sprintf("¡Se registro el Encuentro de %s!", n.PetName)
	default:
		return "Notificación"
	}
}

func DescriptionFor(n Notification) string {
	if n.Description != "" {
		return n.Description
	}

	switch n.Type {
	case TypeLostPetRegistered:
		return fmt.Sprintf(
			"Se publicó correctamente la pérdida de tu %s. Mantén la calma; recibirás una notificación en cuanto alguien lo vea o lo encuentre.",
			petTypeText(n.PetType),
		)
	case TypePetSeen:
		return fmt.Sprintf(
			"Se registró una vista de un %s similar al tuyo en %s. Haz clic aquí para obtener más detalles.",
			petTypeText(n.PetType), locationOr(n),
		)
	case TypePetFound:
		cap := petTypeTextCapitalized(n.PetType)
		return fmt.Sprintf(
			"El albergue mis patitas amores encontro a tu %s %s, haz clic aquí para ver el estado de tu %s.",
			cap, n.PetName, cap,
		)
	default:
		return ""
	}
}
