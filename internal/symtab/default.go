package symtab

// DefaultVersion identifies the firmware register map the built-in table
// was last synchronized against.
const DefaultVersion = "cru-fw-builtin"

// Default returns the built-in table. Registers that are deprecated or not
// yet wired in the firmware are left commented out.
func Default() *Table {
	entries := make([]Entry, len(defaultEntries))
	copy(entries, defaultEntries)
	return &Table{Version: DefaultVersion, Entries: entries}
}

var defaultEntries = []Entry{

	// bar0
	{Symbol: "add_pcie_dma_ctrl", Public: "DMA_CONTROL"},
	{Symbol: "add_pcie_dma_desc_h", Public: "LINK_SUPERPAGE_ADDRESS_HIGH"},
	{Symbol: "add_pcie_dma_desc_l", Public: "LINK_SUPERPAGE_ADDRESS_LOW"},
	{Symbol: "add_pcie_dma_desc_sz", Public: "LINK_SUPERPAGE_PAGES"},
	{Symbol: "add_pcie_dma_spg0_ack", Public: "LINK_SUPERPAGES_COUNT"},
	{Symbol: "add_pcie_dma_ddg_cfg0", Public: "DATA_GENERATOR_CONTROL"},
	{Symbol: "add_pcie_dma_ddg_cfg2", Public: "DATA_GENERATOR_INJECT_ERROR"},
	{Symbol: "add_pcie_dma_data_sel", Public: "DATA_SOURCE_SELECT"},
	{Symbol: "add_pcie_dma_rst", Public: "RESET_CONTROL"},

	// bar2
	{Symbol: "add_bsp_hkeeping_tempstat", Public: "TEMPERATURE"},
	{Symbol: "add_bsp_info_builddate", Public: "FIRMWARE_DATE"},
	{Symbol: "add_bsp_info_buildtime", Public: "FIRMWARE_TIME"},
	{Symbol: "add_bsp_hkeeping_chipid_low", Public: "FPGA_CHIP_LOW"},
	{Symbol: "add_bsp_hkeeping_chipid_high", Public: "FPGA_CHIP_HIGH"},
	{Symbol: "add_ttc_clkgen_ttc240freq", Public: "CTP_CLOCK"},
	{Symbol: "add_ttc_clkgen_lcl240freq", Public: "LOCAL_CLOCK"},
	{Symbol: "add_gbt_wrapper0", Public: "WRAPPER0"},
	{Symbol: "add_gbt_wrapper1", Public: "WRAPPER1"},
	{Symbol: "add_ttc_clkgen_clkctrl", Public: "CLOCK_CONTROL"},
	{Symbol: "add_ttc_data_ctrl", Public: "TTC_DATA"},
	{Symbol: "add_ttc_onu_ctrl", Public: "LOCK_CLOCK_TO_REF"},
	{Symbol: "add_ttc_onuerror_sticky", Public: "TTC_ONU_STICKY"},
	{Symbol: "add_ctp_emu_runmode", Public: "CTP_EMU_RUNMODE"},
	{Symbol: "add_ctp_emu_ctrl", Public: "CTP_EMU_CTRL"},
	{Symbol: "add_ctp_emu_bc_max", Public: "CTP_EMU_BCMAX"},
	{Symbol: "add_ctp_emu_hb_max", Public: "CTP_EMU_HBMAX"},
	{Symbol: "add_ctp_emu_prescaler", Public: "CTP_EMU_PRESCALER"},
	{Symbol: "add_ctp_emu_physdiv", Public: "CTP_EMU_PHYSDIV"},
	{Symbol: "add_ctp_emu_caldiv", Public: "CTP_EMU_CALDIV"},
	{Symbol: "add_ctp_emu_hcdiv", Public: "CTP_EMU_HCDIV"},
	{Symbol: "add_ctp_emu_fbct", Public: "CTP_EMU_FBCT"},
	{Symbol: "add_ctp_emu_orbit_init", Public: "CTP_EMU_ORBIT_INIT"},
	{Symbol: "add_patplayer_cfg", Public: "PATPLAYER_CFG"},
	{Symbol: "add_patplayer_idlepat0", Public: "PATPLAYER_IDLE_PATTERN_0"},
	{Symbol: "add_patplayer_idlepat1", Public: "PATPLAYER_IDLE_PATTERN_1"},
	{Symbol: "add_patplayer_idlepat2", Public: "PATPLAYER_IDLE_PATTERN_2"},
	{Symbol: "add_patplayer_syncpat0", Public: "PATPLAYER_SYNC_PATTERN_0"},
	{Symbol: "add_patplayer_syncpat1", Public: "PATPLAYER_SYNC_PATTERN_1"},
	{Symbol: "add_patplayer_syncpat2", Public: "PATPLAYER_SYNC_PATTERN_2"},
	{Symbol: "add_patplayer_rstpat0", Public: "PATPLAYER_RESET_PATTERN_0"},
	{Symbol: "add_patplayer_rstpat1", Public: "PATPLAYER_RESET_PATTERN_1"},
	{Symbol: "add_patplayer_rstpat2", Public: "PATPLAYER_RESET_PATTERN_2"},
	{Symbol: "add_patplayer_synccnt", Public: "PATPLAYER_SYNC_CNT"},
	{Symbol: "add_patplayer_delaycnt", Public: "PATPLAYER_DELAY_CNT"},
	{Symbol: "add_patplayer_rstcnt", Public: "PATPLAYER_RESET_CNT"},
	{Symbol: "add_patplayer_trigsel", Public: "PATPLAYER_TRIGGER_SEL"},
	{Symbol: "add_datapathlink_offset", Public: "DATAPATHLINK_OFFSET"},
	{Symbol: "add_datalink_offset", Public: "DATALINK_OFFSET"},
	{Symbol: "add_datalink_ctrl", Public: "DATALINK_CONTROL"},
	{Symbol: "add_datalink_feeid", Public: "DATALINK_IDS"},
	{Symbol: "add_datalink_acc_pkt", Public: "DATALINK_PACKETS_ACCEPTED"},
	{Symbol: "add_datalink_rej_pkt", Public: "DATALINK_PACKETS_REJECTED"},
	{Symbol: "add_datalink_forced_pkt", Public: "DATALINK_PACKETS_FORCED"},
	{Symbol: "add_gbt_wrapper_bank_offset", Public: "GBT_WRAPPER_BANK_OFFSET"},
	{Symbol: "add_gbt_bank_link_offset", Public: "GBT_BANK_LINK_OFFSET"},
	{Symbol: "add_gbt_link_regs_offset", Public: "GBT_LINK_REGS_OFFSET"},
	{Symbol: "add_gbt_link_source_sel", Public: "GBT_LINK_SOURCE_SELECT"},
	{Symbol: "add_gbt_link_status", Public: "GBT_LINK_STATUS"},
	{Symbol: "add_gbt_link_clr_errcnt", Public: "GBT_LINK_CLEAR_ERRORS"},
	{Symbol: "add_gbt_link_rxclk_cnt", Public: "GBT_LINK_RX_CLOCK"},
	{Symbol: "add_gbt_link_txclk_cnt", Public: "GBT_LINK_TX_CLOCK"},
	{Symbol: "add_gbt_link_xcvr_offset", Public: "GBT_LINK_XCVR_OFFSET"},
	{Symbol: "add_gbt_link_tx_ctrl_offset", Public: "GBT_LINK_TX_CONTROL_OFFSET"},
	{Symbol: "add_gbt_link_rx_ctrl_offset", Public: "GBT_LINK_RX_CONTROL_OFFSET"},
	{Symbol: "add_bsp_info_usertxsel", Public: "GBT_MUX_SELECT"},
	{Symbol: "add_bsp_info_userctrl", Public: "BSP_USER_CONTROL"},
	{Symbol: "add_base_datapathwrapper0", Public: "DWRAPPER_BASE0"},
	{Symbol: "add_base_datapathwrapper1", Public: "DWRAPPER_BASE1"},
	{Symbol: "add_dwrapper_datagenctrl", Public: "DWRAPPER_DATAGEN_CONTROL"},
	{Symbol: "add_gbt_wrapper_conf0", Public: "GBT_WRAPPER_CONF0"},
	{Symbol: "add_gbt_wrapper_clk_cnt", Public: "GBT_WRAPPER_CLOCK_COUNTER"},
	{Symbol: "add_gbt_wrapper_gregs", Public: "GBT_WRAPPER_GREGS"},
	{Symbol: "add_dwrapper_gregs", Public: "DWRAPPER_GREGS"},
	{Symbol: "add_dwrapper_enreg", Public: "DWRAPPER_ENREG"},
	{Symbol: "add_dwrapper_drop_pkts", Public: "DWRAPPER_DROPPED"},
	{Symbol: "add_dwrapper_tot_per_sec", Public: "DWRAPPER_TOTAL_PACKETS_PER_SEC"},
	{Symbol: "add_dwrapper_trigsize", Public: "DWRAPPER_TRIGGER_SIZE"},
	{Symbol: "add_ddg_ctrl", Public: "DDG_CTRL0"},
	{Symbol: "add_ddg_ctrl2", Public: "DDG_CTRL2"},
	{Symbol: "add_pon_wrapper_tx", Public: "PON_WRAPPER_TX"},
	{Symbol: "add_pon_wrapper_pll", Public: "PON_WRAPPER_PLL"},
	{Symbol: "add_pon_wrapper_reg", Public: "PON_WRAPPER_REG"},
	{Symbol: "add_ttc_clkgen_onufpll", Public: "CLOCK_ONU_FPLL"},
	{Symbol: "add_ttc_clkgen_pllctrlonu", Public: "CLOCK_PLL_CONTROL_ONU"},
	{Symbol: "add_ttc_hbtrig_ltu", Public: "LTU_HBTRIG_CNT"},
	{Symbol: "add_ttc_phystrig_ltu", Public: "LTU_PHYSTRIG_CNT"},
	{Symbol: "add_ttc_eox_sox_ltu", Public: "LTU_EOX_SOX_CNT"},
	{Symbol: "add_onu_user_logic", Public: "ONU_USER_LOGIC"},
	{Symbol: "add_onu_user_refgen", Public: "ONU_USER_REFGEN"},
	{Symbol: "add_onu_mgt_stickys", Public: "ONU_MGT_STICKYS"},
	{Symbol: "add_refgen0_offset", Public: "REFGEN0_OFFSET"},
	{Symbol: "add_refgen1_offset", Public: "REFGEN1_OFFSET"},
	// {Symbol: "add_refgen2_offset", Public: "I2C_COMMAND"},
	{Symbol: "add_flowctrl_offset", Public: "FLOW_CONTROL_OFFSET"},
	{Symbol: "add_flowctrl_ctrlreg", Public: "FLOW_CONTROL_REGISTER"},
	{Symbol: "add_gbt_wrapper_atx_pll", Public: "GBT_WRAPPER_ATX_PLL"},
	{Symbol: "add_gbt_bank_fpll", Public: "GBT_BANK_FPLL"},
	{Symbol: "add_bsp_i2c_eeprom", Public: "BSP_I2C_EEPROM"},
	{Symbol: "add_bsp_i2c_minipods", Public: "BSP_I2C_MINIPODS"},
	{Symbol: "add_bsp_i2c_si5345_1", Public: "SI5345_1"},
	{Symbol: "add_bsp_i2c_si5345_2", Public: "SI5345_2"},
	{Symbol: "add_bsp_i2c_si5344", Public: "SI5344"},
	{Symbol: "add_pcie_dma_ep_id", Public: "ENDPOINT_ID"},
	{Symbol: "add_ro_prot_system_id", Public: "VIRTUAL_LINKS_IDS"},

	// SCA
	{Symbol: "add_gbt_sc", Public: "SC_BASE_INDEX"},
	{Symbol: "add_gbt_sca_wr_data", Public: "SCA_WR_DATA"},
	{Symbol: "add_gbt_sca_wr_cmd", Public: "SCA_WR_CMD"},
	{Symbol: "add_gbt_sca_wr_ctr", Public: "SCA_WR_CTRL"},

	{Symbol: "add_gbt_sca_rd_data", Public: "SCA_RD_DATA"},
	{Symbol: "add_gbt_sca_rd_cmd", Public: "SCA_RD_CMD"},
	{Symbol: "add_gbt_sca_rd_ctr", Public: "SCA_RD_CTRL"},
	{Symbol: "add_gbt_sca_rd_mon", Public: "SCA_RD_MON"},

	{Symbol: "add_gbt_sc_link", Public: "SC_LINK"},
	{Symbol: "add_gbt_sc_rst", Public: "SC_RESET"},

	// SWT
	{Symbol: "add_gbt_swt_wr_l", Public: "SWT_WR_WORD_L"},
	{Symbol: "add_gbt_swt_wr_m", Public: "SWT_WR_WORD_M"},
	{Symbol: "add_gbt_swt_wr_h", Public: "SWT_WR_WORD_H"},

	{Symbol: "add_gbt_swt_rd_l", Public: "SWT_RD_WORD_L"},
	{Symbol: "add_gbt_swt_rd_m", Public: "SWT_RD_WORD_M"},
	{Symbol: "add_gbt_swt_rd_h", Public: "SWT_RD_WORD_H"},

	{Symbol: "add_gbt_swt_cmd", Public: "SWT_CMD"},
	{Symbol: "add_gbt_swt_mon", Public: "SWT_MON"},
	{Symbol: "add_gbt_swt_word_mon", Public: "SWT_WORD_MON"},
}
