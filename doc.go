// Package xls2img extracts PNG and JPEG images embedded in legacy BIFF8
// (.xls) workbooks.
//
// A workbook is an OLE2/Compound File Binary container; images are not
// stored as their own stream but packed, with Excel's internal drawing
// metadata, inside the Workbook stream's MsoDrawingGroup/Continue record
// chain. Open parses the container and locates the Workbook stream;
// ExtractImages walks that stream's BIFF8 records, reassembles the
// drawing group, and scans the result for PNG/JPEG signatures.
//
//	r, err := xls2img.Open(buf, nil)
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//	wb, err := r.Workbook()
//	if err != nil {
//		return err
//	}
//	images, err := xls2img.ExtractImages(wb, nil)
//
// Extract combines the three calls above for the common case.
package xls2img
