package derive

import (
	"strconv"
	"strings"
)

// surfaceNamesByLetter maps the first letter of a surface short code to the
// display surface name used in SAPO listings.
var surfaceNamesByLetter = map[string]string{
	"M": "MỜ",
	"G": "BÓNG",
	"P": "SẦN",
	"L": "BÁN BÓNG",
	"D": "DECOR",
	"K": "KEO",
	"T": "TOILET",
	"H": "NÓNG-LẠNH",
	"C": "LẠNH",
}

// SurfaceDisplayName resolves the display surface name from the first letter
// of the surface short code, case-insensitively. Unknown letters resolve to "".
func SurfaceDisplayName(shortCode string) string {
	code := strings.TrimSpace(shortCode)
	if code == "" {
		return ""
	}
	letter := strings.ToUpper(code[:1])
	return surfaceNamesByLetter[letter]
}

// AutoBarCode builds the generated barcode from the supplier short code, the
// order number and an optional pattern short code. Both the supplier and the
// order number are required; the pattern contributes only when it resolves.
func AutoBarCode(t *Tables, supplierID int64, orderNumber string, patternID int64) string {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return ""
	}
	supplier, ok := t.Supplier(supplierID)
	if !ok {
		return ""
	}
	code := supplier.ShortCode + "." + orderNumber
	if pattern, ok := t.Pattern(patternID); ok {
		code += pattern.ShortCode
	}
	return code
}

// ProductCode builds the supplier-scoped product code.
func ProductCode(t *Tables, supplierID int64, orderNumber string) string {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return ""
	}
	supplier, ok := t.Supplier(supplierID)
	if !ok {
		return ""
	}
	return supplier.ShortCode + "." + orderNumber
}

// SKU builds the confirmed item code. All four inputs must resolve; a partial
// selection yields the empty sentinel rather than a partial code.
func SKU(t *Tables, companyCodeID, supplierID int64, supplierItemCode string, surfaceID int64) string {
	supplierItemCode = strings.TrimSpace(supplierItemCode)
	if supplierItemCode == "" {
		return ""
	}
	companyCode, ok := t.CompanyCode(companyCodeID)
	if !ok {
		return ""
	}
	supplier, ok := t.Supplier(supplierID)
	if !ok {
		return ""
	}
	surface, ok := t.Surface(surfaceID)
	if !ok {
		return ""
	}
	return companyCode.CodeName + "-" + supplier.CombinedCode + "-" + supplierItemCode + "-" + surface.ShortCode
}

// ConfirmItemCode shortens the supplier item code to its last six characters
// and prefixes the company code when one is selected.
func ConfirmItemCode(t *Tables, supplierItemCode string, companyCodeID int64) string {
	code := strings.TrimSpace(supplierItemCode)
	if code == "" {
		return ""
	}
	if len(code) > 6 {
		code = code[len(code)-6:]
	}
	if companyCode, ok := t.CompanyCode(companyCodeID); ok {
		return companyCode.CodeName + " " + code
	}
	return code
}

// WebsiteName builds the public display name. The barcode, pattern and size
// must all resolve; the remaining attributes contribute only when present so
// a missing lookup never leaks placeholder text into the name.
func WebsiteName(t *Tables, autoBarCode string, sizeID, patternID, colorID, bodyColorID, materialID, surfaceID int64) string {
	if autoBarCode == "" {
		return ""
	}
	pattern, ok := t.Pattern(patternID)
	if !ok {
		return ""
	}
	size, ok := t.Size(sizeID)
	if !ok {
		return ""
	}

	attrs := []string{pattern.Name}
	if color, ok := t.Color(colorID); ok {
		attrs = append(attrs, color.Name)
	}
	if surface, ok := t.Surface(surfaceID); ok {
		attrs = append(attrs, surface.Name)
	}
	if material, ok := t.Material(materialID); ok {
		attrs = append(attrs, material.Name)
	}
	if body, ok := t.BodyColor(bodyColorID); ok {
		attrs = append(attrs, body.Name)
	}

	name := autoBarCode + " - " + formatSize(size) + " - " + strings.Join(attrs, " ")
	return strings.TrimSpace(name)
}

// SapoName builds the sales-channel display name. Pattern, origin, material,
// surface and company code must resolve and a product name must be present.
func SapoName(t *Tables, patternID, originID, colorID, materialID, surfaceID, companyCodeID int64, productName string) string {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return ""
	}
	pattern, ok := t.Pattern(patternID)
	if !ok {
		return ""
	}
	origin, ok := t.Origin(originID)
	if !ok {
		return ""
	}
	material, ok := t.Material(materialID)
	if !ok {
		return ""
	}
	surface, ok := t.Surface(surfaceID)
	if !ok {
		return ""
	}
	companyCode, ok := t.CompanyCode(companyCodeID)
	if !ok {
		return ""
	}

	codeName := companyCode.CodeName
	if idx := strings.Index(codeName, "AK"); idx >= 0 {
		codeName = codeName[:idx]
	}

	colorName := ""
	if color, ok := t.Color(colorID); ok {
		colorName = color.Name
	}

	name := codeName + " - " + productName + " - " + origin.UpperName + " - " + material.ShortName +
		" - " + colorName + "," + pattern.ShortName + "," + SurfaceDisplayName(surface.ShortCode)
	return strings.TrimSpace(name)
}

// formatSize renders stored tenth-of-centimeter dimensions as centimeters,
// e.g. wide=600 length=600 -> "60 x 60 cm".
func formatSize(size Size) string {
	return formatDimension(size.Wide) + " x " + formatDimension(size.Length) + " cm"
}

func formatDimension(value float64) string {
	return strconv.FormatFloat(value/10, 'f', -1, 64)
}
