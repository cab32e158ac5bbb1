package report

import (
	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

// WriteWorkbook saves one sheet per curve with reduce and ssim columns.
func WriteWorkbook(path string, curves []Curve) error {
	file := xlsx.NewFile()
	for _, c := range curves {
		sheet, err := file.AddSheet(sheetName(c.Model))
		if err != nil {
			return errors.Wrapf(err, "add sheet %s", c.Model)
		}
		header := sheet.AddRow()
		header.AddCell().SetString("reduce")
		header.AddCell().SetString("ssim")
		for _, p := range c.Points {
			row := sheet.AddRow()
			row.AddCell().SetFloat(p.X)
			row.AddCell().SetFloat(p.Y)
		}
	}
	return errors.Wrap(file.Save(path), "save workbook")
}

// sheetName trims to the 31 character limit of sheet names.
func sheetName(model string) string {
	r := []rune(model)
	if len(r) > 31 {
		return string(r[:31])
	}
	return model
}
