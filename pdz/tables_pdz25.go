// SPDX-License-Identifier: MIT

package pdz

// pdz25Records is the record schema table of the pdz25 dialect, keyed by
// the record-type id of the block header. Field order is positional and
// must not be reordered. Dynamic text and blob lengths resolve through the
// {name}_length sibling convention; spectrum sample counts come from the
// channels field.
var pdz25Records = map[uint16]RecordSchema{
	25: {Name: "File Header", Fields: []FieldSchema{
		TextN("file_type_id", 5),
		U32("instrument_type"),
	}},
	1: {Name: "XRF Instrument", Fields: []FieldSchema{
		U32("serial_number_length"),
		Text("serial_number"),
		U32("build_number_length"),
		Text("build_number"),
		U8("tube_target_element"),
		U8("anode_takeoff_angle"),
		U8("sample_incidence_angle"),
		U8("sample_takeoff_angle"),
		I16("be_thickness"),
		U32("detector_model_length"),
		Text("detector_model"),
		U32("tube_type_length"),
		Text("tube_type"),
		U8("hw_spot_size"),
		U8("sw_spot_size"),
		U32("collimator_type_length"),
		Text("collimator_type"),
		U32("num_versions"),
		U16("sw_version_record_num"),
		U32("sw_version_length"),
		Text("sw_version"),
		U16("xilinx_version_record_num"),
		U32("xilinx_fw_ver_length"),
		Text("xilinx_fw_ver"),
		U16("sup_version_record_num"),
		U32("sup_fw_ver_length"),
		Text("sup_fw_ver"),
		U16("uup_version_record_num"),
		U32("uup_fw_ver_length"),
		Text("uup_fw_ver"),
		U16("xray_source_version_record_num"),
		U32("xray_src_fw_ver_length"),
		Text("xray_src_fw_ver"),
		U16("dpp_version_record_num"),
		U32("dpp_fw_ver_length"),
		Text("dpp_fw_ver"),
		U16("header_version_record_num"),
		U32("header_fw_ver_length"),
		Text("header_fw_ver"),
		U16("baseboard_version_record_num"),
		U32("baseboard_fw_ver_length"),
		Text("baseboard_fw_ver"),
	}},
	2: {Name: "XRF Assay Summary", Fields: []FieldSchema{
		U32("number_of_phases"),
		U32("raw_counts"),
		U32("valid_counts"),
		U32("valid_counts_in_range"),
		U32("reset_counts"),
		F32("total_real_time"),
		F32("total_packet_time"),
		F32("total_dead"),
		F32("total_reset"),
		F32("total_live"),
		F32("elapsed_time"),
		U32("application_name_length"),
		Text("application_name"),
		U32("application_part_number_length"),
		Text("application_part_number"),
		U32("user_id_length"),
		Text("user_id"),
	}},
	3: {Name: "XRF Spectrum", Fields: []FieldSchema{
		U32("phase_number"),
		U32("raw_counts"),
		U32("valid_counts"),
		U32("valid_counts_in_range"),
		U32("reset_counts"),
		F32("time_since_trigger"),
		F32("total_packet_time"),
		F32("total_dead"),
		F32("total_reset"),
		F32("total_live"),
		F32("tube_voltage"),
		F32("tube_current"),
		// There are always exactly three filters in the filter block.
		Group("filters", Fixed(3),
			I16("filter_element"),
			I16("filter_thickness"),
		),
		I16("filter_wheel_number"),
		F32("detector_temp"),
		F32("ambient_temp"),
		I32("vacuum"),
		F32("ev_per_channel"),
		I16("gain_drift_algorithm"),
		F32("channel_start"),
		Timestamp("acquisition_date_time"),
		F32("atmospheric_pressure"),
		I16("channels"),
		I16("nose_temp"),
		I16("environment"),
		U32("illumination_length"),
		Text("illumination"),
		I16("normal_packet_start"),
		Samples("spectrum_data", "channels"),
	}},
	4: {Name: "Raw XRF Spectrum Packet", Fields: []FieldSchema{
		U32("phase_number"),
		U8("xilinx_fw_ver"),
		U8("xilinx_fw_sub_ver"),
		U16("packet_len"),
		U32("time_since_trigger"),
		U32("raw_count"),
		U32("valid_count"),
		U32("valid_count_in_range"),
		U32("packet_time"),
		U32("dead_time"),
		U32("reset_time"),
		U32("live_time"),
		U32("service"),
		U16("reset_count"),
		U16("packet_count"),
		Skip(20),
		RawBytes("xilinx_vars", 58),
		I16("detector_temp"),
		U16("ambient_temp"),
		U8("controller_fw_ver"),
		U8("controller_fw_sub_ver"),
		U32("total_raw_counts"),
		U32("total_valid_counts"),
		U32("total_valid_counts_in_range"),
		U32("total_reset_counts"),
		F32("total_time_since_trigger"),
		F32("total_packet_time"),
		F32("total_dead"),
		F32("total_reset"),
		F32("total_live"),
		Samples("spectrum_data", "channels"),
	}},
	5: {Name: "Calculated Results", Fields: []FieldSchema{
		U32("analysis_mode"),
		U32("analysis_type"),
		I16("used_auto_cal_select"),
		I16("result_type"),
		U16("error_multiplier"),
		U32("cal_file_length"),
		// cal_file_name and cal_pkg_part_number resolve their lengths
		// through the {name}_length convention, which does not match the
		// declared length fields above them. Both resolve to 0. Kept as
		// observed.
		Text("cal_file_name"),
		U32("cal_pkg_name_length"),
		Text("cal_pkg_name"),
		U32("cal_pkg_pn_length"),
		Text("cal_pkg_part_number"),
		U32("type_std_set_name_length"),
		Text("type_std_set_name"),
	}},
	6: {Name: "Calculated Results Details", Fields: []FieldSchema{
		U32("name_length"),
		Text("name"),
		U32("atomic_number"),
		U8("units"),
		F32("result"),
		F32("type_std_result"),
		F32("error"),
		F32("min"),
		F32("max"),
		I16("tramp"),
		I16("nominal"),
	}},
	7: {Name: "Grade ID Results", Fields: []FieldSchema{
		// Exactly three Grade IDs; the format carries no count field.
		Group("grades", Fixed(3),
			U32("grade_id_length"),
			Text("grade_id"),
			F32("confidence"),
		),
		F32("match_spread_threshold"),
		I16("process_tramp_elements"),
		I16("nominal_chemistry"),
		U16("num_grade_libs"),
		Group("grade_libraries", FieldRef("num_grade_libs"),
			U32("grade_lib_file_name_length"),
			Text("grade_lib_file_name"),
			U32("grade_lib_ver_length"),
			Text("grade_lib_version"),
		),
	}},
	8: {Name: "Pass/Fail Results", Fields: []FieldSchema{
		U16("record_type"),
		U32("data_length"),
		U16("passed"),
		U32("limit_file_name_length"),
		Text("limit_file_name"),
		U32("material_name_length"),
		Text("material_name"),
	}},
	9: {Name: "User Custom Fields", Fields: []FieldSchema{
		I16("num_fields"),
		Group("fields", FieldRef("num_fields"),
			U32("field_name_length"),
			Text("field_name"),
			U32("field_value_length"),
			Text("field_value"),
		),
	}},
	10: {Name: "Average Details", Fields: []FieldSchema{
		U32("num_assays"),
		Group("assays", FieldRef("num_assays"),
			U32("assay_number"),
		),
	}},
	11: {Name: "Filter Layers", Fields: []FieldSchema{
		U16("phase_number"),
		U16("layers_number"),
		U16("filter_layer_element"),
		U32("filter_layer_thickness"),
	}},
	137: {Name: "Image Details", Fields: []FieldSchema{
		I32("num_images"),
		Group("images", FieldRef("num_images"),
			U32("image_length"),
			Blob("image"), // JPEG payload of image_length bytes
			U32("x_dimension"),
			U32("y_dimension"),
			U32("annotation_length"),
			Text("annotation"),
		),
	}},
	138: {Name: "GPS Details", Fields: []FieldSchema{
		I32("gps_valid"),
		F64("latitude"),
		F64("longitude"),
		F32("altitude"),
	}},
	139: {Name: "Miscellaneous Information", Fields: []FieldSchema{
		I32("std_multiplier"),
		U32("active_cal_length"),
		Text("active_cal"),
		U32("sample_id_length"),
		Text("sample_id"),
	}},
	900: {Name: "Trace Log", Fields: []FieldSchema{
		U32("log_length"),
		Text("log"),
	}},
	1001: {Name: "Libs Alloy Results", Fields: []FieldSchema{
		I16("is_auto_selected"),
		U16("std_dev_multiplier"),
		U32("library_name_length"),
		Text("library_name"),
		Timestamp("created"),
		U32("created_by_length"),
		Text("created_by"),
		I16("num_elements"),
		Group("elements", FieldRef("num_elements"),
			Text("element_name"),
			F32("element_percentage"),
			F32("element_lod"),
			F32("element_std_dev"),
			F32("element_max"),
			F32("element_min"),
		),
	}},
	1002: {Name: "Libs Grade ID Results", Fields: []FieldSchema{
		U16("num_grade_ids"),
		// The repeat reference below does not exist in this record's own
		// schema and resolves to 0, omitting the group. Kept as observed.
		Group("grade_ids", FieldRef("num_elements"),
			U32("grade_id_length"),
			Text("grade_id"),
			F32("confidence"),
		),
		F32("match_spread_threshold"),
		U16("num_grade_libs"),
		Group("grade_libs", FieldRef("num_grade_libs"),
			U32("file_name_length"),
			Text("file_name"),
			U32("ver_length"),
			Text("version"),
		),
	}},
	1003: {Name: "Libs Alloy Method", Fields: []FieldSchema{
		U32("model_name_length"),
		Text("model_name"),
		U32("base_length"),
		Text("base"),
		U16("integration_time"),
		Timestamp("created"),
		U32("created_by_length"),
		Text("created_by"),
	}},
	1004: {Name: "Libs Alloy Sample", Fields: []FieldSchema{
		U64("scan_index"),
		U32("name_length"),
		Text("name"),
		U32("scan_id_length"),
		Text("scan_id"),
		Timestamp("created"),
		U32("created_by_length"),
		Text("created_by"),
		I16("num_fields"),
		U32("field_name_length"),
		Text("field_name"),
		U32("field_value_length"),
		Text("field_value"),
		U32("spectrum_data_length"),
		// Documented as interleaved x/y pairs; decoded as a flat sequence
		// of spectrum_data_length floats. Kept as observed.
		Floats("spectrum_data"),
	}},
}
